package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(state *lazyApp) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all stored services",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state.bindOutput(cmd)
			app, err := state.get()
			if err != nil {
				return err
			}

			return runList(cmd, app)
		},
	}
}

func runList(cmd *cobra.Command, app *app) error {
	names, err := app.service.ListServices(cmd.Context())
	if err != nil {
		return err
	}

	if len(names) == 0 {
		_, err = fmt.Fprintln(cmd.ErrOrStderr(), app.errOut.Services(nil))
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.out.Services(names))
	return err
}
