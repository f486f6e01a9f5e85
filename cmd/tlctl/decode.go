package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/observability"
	"github.com/danmuck/tlwire/internal/protocol/tl"
	"github.com/danmuck/tlwire/internal/protocol/types"
)

type inputFlags struct {
	file string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read raw bytes from a file instead of a hex argument")
}

// read returns the bytes named by the hex argument or the --file flag.
func (f *inputFlags) read(args []string) ([]byte, error) {
	if f.file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("give either a hex argument or --file, not both")
		}
		return os.ReadFile(f.file)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("missing hex input")
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, strings.Join(args, ""))
	clean = strings.TrimPrefix(strings.ToLower(clean), "0x")
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		in          inputFlags
		showMetrics bool
	)
	cmd := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode one object with the built-in layer and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := in.read(args)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			r := types.Registry()
			if showMetrics {
				r = r.WithObserver(observability.MustCodecMetrics(reg))
			}

			obj, decodeErr := r.DecodeWithLimits(data, a.cfg.Codec.Limits())
			if decodeErr == nil {
				if err := printObject(cmd.OutOrStdout(), obj); err != nil {
					return err
				}
			}
			if showMetrics {
				if err := printMetrics(cmd.OutOrStdout(), reg); err != nil {
					return err
				}
			}
			return decodeErr
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print codec counters after decoding")
	return cmd
}

func newEncodeCheckCmd(a *app) *cobra.Command {
	var in inputFlags
	cmd := &cobra.Command{
		Use:   "encode-check [hex]",
		Short: "Decode then re-encode one object and compare the bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := in.read(args)
			if err != nil {
				return err
			}
			obj, err := types.Registry().DecodeWithLimits(data, a.cfg.Codec.Limits())
			if err != nil {
				return err
			}
			again, err := tl.Encode(obj)
			if err != nil {
				return err
			}
			if !bytes.Equal(data, again) {
				return fmt.Errorf("round trip mismatch for %s:\n  in:  % x\n  out: % x", obj.TLName(), data, again)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %s (%d bytes)\n", obj.TLName(), len(data))
			return nil
		},
	}
	in.register(cmd)
	return cmd
}

func printObject(w io.Writer, obj tl.Object) error {
	body, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("render %s: %w", obj.TLName(), err)
	}
	_, err = fmt.Fprintf(w, "%s#%08x %s\n", obj.TLName(), obj.TLTag(), body)
	return err
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			}
			fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}
