package cmd

import (
	"fmt"

	"github.com/jpedro/master/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(state *lazyApp) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long:  "Print the effective configuration in config.toml format. The master username and password are redacted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state.bindOutput(cmd)
			app, err := state.get()
			if err != nil {
				return err
			}

			data, err := config.Encode(app.cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
