package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danmuck/tlwire/internal/config"
	"github.com/danmuck/tlwire/internal/logging"
)

type globalFlags struct {
	ConfigPath string
	LogLevel   string
}

// app carries state shared by subcommands after the root pre-run.
type app struct {
	flags globalFlags
	cfg   config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:           "tlctl",
		Short:         "TL schema generator and wire inspection tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime()
			if a.flags.ConfigPath != "" {
				cfg, err := config.Load(a.flags.ConfigPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
				logging.SetLevel(cfg.Log.Level)
			}
			if a.flags.LogLevel != "" && !logging.SetLevel(a.flags.LogLevel) {
				return fmt.Errorf("unknown log level %q", a.flags.LogLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.flags.ConfigPath, "config", "c", "", "tlctl TOML config file")
	root.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", "", "log level: trace|debug|info|warn|error|off")

	root.AddCommand(
		newGenCmd(a),
		newDecodeCmd(a),
		newEncodeCheckCmd(a),
		newRegistryCmd(),
		newConfigCmd(),
	)
	return root
}
