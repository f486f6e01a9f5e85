package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/protocol/types"
)

func newRegistryCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "List the constructors of the built-in layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := types.Registry()
			data := pterm.TableData{{"Tag", "Constructor", "Type"}}
			for _, ctor := range r.Constructors() {
				if base != "" && ctor.Base != base {
					continue
				}
				data = append(data, []string{fmt.Sprintf("0x%08x", ctor.Tag), ctor.Name, ctor.Base})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			fmt.Fprintf(cmd.OutOrStdout(), "layer %d, %d constructors\n", r.Layer(), len(data)-1)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "type", "", "only list constructors of this base type")
	return cmd
}
