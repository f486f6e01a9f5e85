package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/observability"
	"github.com/danmuck/tlwire/internal/protocol/gen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		schemaPath string
		outputPath string
		pkg        string
		layer      int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go types from a TL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.Gen.Options()
			if schemaPath == "" {
				schemaPath = a.cfg.Gen.Schema
			}
			if outputPath == "" {
				outputPath = a.cfg.Gen.Output
			}
			if cmd.Flags().Changed("package") {
				opts.Package = pkg
			}
			if cmd.Flags().Changed("layer") {
				opts.Layer = layer
			}
			if schemaPath == "" || outputPath == "" {
				return fmt.Errorf("gen: --schema and --output are required")
			}

			logger := observability.CommandLogger("tlctl", "gen")
			logger.Debug().Str("schema", schemaPath).Str("package", opts.Package).Msg("generating")
			if err := gen.GenerateFile(schemaPath, outputPath, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "TL schema file")
	cmd.Flags().StringVar(&outputPath, "output", "", "generated Go file")
	cmd.Flags().StringVar(&pkg, "package", "", "Go package name")
	cmd.Flags().IntVar(&layer, "layer", 0, "override the schema layer")
	return cmd
}
