package cmd

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(state *lazyApp) *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove NAME from the stored list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state.bindOutput(cmd)
			app, err := state.get()
			if err != nil {
				return err
			}

			return runRemove(cmd, app, args[0])
		},
	}
}

func runRemove(cmd *cobra.Command, app *app, service string) error {
	return app.service.RemoveService(cmd.Context(), service)
}
