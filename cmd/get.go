package cmd

import (
	"fmt"

	"github.com/jpedro/master/internal/application"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	counter uint64
	print   bool
	noCopy  bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.counter, "counter", 0, "Counter mixed into the derivation")
	cmd.Flags().BoolVarP(&f.print, "print", "p", false, "Also write the password to stdout")
	cmd.Flags().BoolVar(&f.noCopy, "no-copy", false, "Do not copy the password to the clipboard")
}

func newGetCmd(state *lazyApp) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:     "get [SERVICE]",
		Aliases: []string{"start"},
		Short:   "Copy the password for SERVICE",
		Long:    "Copy the password for SERVICE to the clipboard and remember SERVICE. Without SERVICE, MASTER_SERVICE is used or you are asked for one.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state.bindOutput(cmd)
			app, err := state.get()
			if err != nil {
				return err
			}

			return runGenerate(cmd, app, firstArg(args), flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, app *app, service string, flags generateFlags) error {
	if service == "" {
		service = app.cfg.Service
	}

	result, err := app.service.Generate(cmd.Context(), application.GenerateCommand{
		Service: service,
		Counter: flags.counter,
		NoCopy:  flags.noCopy,
	})
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	if flags.print {
		if _, err := fmt.Fprintln(stdout, result.Password); err != nil {
			return err
		}
	}

	if result.Copied {
		_, err = fmt.Fprintln(stdout, app.out.Copied(result.Service))
		return err
	}

	if result.CopyErr != nil && !flags.print {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), app.errOut.Warning(
			fmt.Sprintf("Could not copy the password (%v); rerun with --print to show it.", result.CopyErr),
		))
	}
	if !flags.print {
		_, err = fmt.Fprintln(stdout, app.out.NotCopied(result.Service))
	}
	return err
}
