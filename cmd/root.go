package cmd

import (
	"fmt"
	"os"

	"github.com/jpedro/master/internal/config"
	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/version"
	"github.com/spf13/cobra"
)

const longDescription = `master derives the same password for a service every time from your master
username and password, without storing either of them. It combines
"username:password:service:counter", hashes it with SHA-256 and renders the
result in readable chunks.

Environment:
  MASTER_USERNAME   master username (prompted when empty)
  MASTER_PASSWORD   master password (prompted when empty)
  MASTER_SERVICE    service used when none is given
  MASTER_HOME       config home (default: ~/.config/master)
  MASTER_LIST       service list (default: $MASTER_HOME/list.txt)
  MASTER_SEPARATOR  chunk separator (default: -)
  MASTER_LENGTH     chunk length (default: 6)
  MASTER_CHUNKS     chunk count (default: 6)
  MASTER_DEBUG      print debug decisions`

func Execute() error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(legacyArgs(os.Args[1:]))
	return rootCmd.Execute()
}

// legacyArgs rewrites the single-dash "-ls" spelling, which flag parsing
// would otherwise read as "-l -s".
func legacyArgs(args []string) []string {
	if len(args) == 0 || args[0] != "-ls" {
		return args
	}

	return append([]string{"--ls"}, args[1:]...)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(wireOverrides{})
}

func newRootCmdWith(overrides wireOverrides) *cobra.Command {
	var list bool
	var remove string
	var generate generateFlags

	rootCmd := &cobra.Command{
		Use:           "master [SERVICE]",
		Short:         "Deterministic password generator",
		Long:          longDescription,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetVersionTemplate("v{{.Version}}\n")

	v, err := config.New()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	flags := rootCmd.PersistentFlags()
	flags.String("list-file", "", "Service list file (env MASTER_LIST)")
	flags.String("separator", domain.DefaultSeparator, "Chunk separator (env MASTER_SEPARATOR)")
	flags.Int("length", domain.DefaultChunkLength, "Chunk length (env MASTER_LENGTH)")
	flags.Int("chunks", domain.DefaultChunkCount, "Chunk count (env MASTER_CHUNKS)")
	flags.Bool("debug", false, "Print debug decisions to stderr (env MASTER_DEBUG)")
	for key, name := range map[string]string{
		config.KeyList:      "list-file",
		config.KeySeparator: "separator",
		config.KeyLength:    "length",
		config.KeyChunks:    "chunks",
		config.KeyDebug:     "debug",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
				return fmt.Errorf("bind flag %q: %w", name, err)
			}
			return rootCmd
		}
	}

	state := &lazyApp{v: v, overrides: overrides}

	local := rootCmd.Flags()
	local.BoolVarP(&list, "list", "l", false, "List all stored services")
	local.StringVarP(&remove, "remove", "r", "", "Remove service `NAME` from the stored list")
	local.BoolVar(&list, "ls", false, "Alias for --list")
	local.StringVar(&remove, "rm", "", "Alias for --remove")
	local.StringVarP(&remove, "delete", "d", "", "Alias for --remove")
	for _, name := range []string{"ls", "rm", "delete"} {
		_ = local.MarkHidden(name)
	}
	rootCmd.MarkFlagsMutuallyExclusive("list", "remove")
	rootCmd.MarkFlagsMutuallyExclusive("ls", "remove")
	rootCmd.MarkFlagsMutuallyExclusive("list", "rm")
	rootCmd.MarkFlagsMutuallyExclusive("list", "delete")
	generate.register(rootCmd)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		state.bindOutput(cmd)
		app, err := state.get()
		if err != nil {
			return err
		}

		removing := cmd.Flags().Changed("remove") || cmd.Flags().Changed("rm") || cmd.Flags().Changed("delete")
		switch {
		case list:
			if len(args) > 0 {
				return fmt.Errorf("--list takes no service argument")
			}
			return runList(cmd, app)
		case removing:
			if len(args) > 0 {
				return fmt.Errorf("--remove takes no service argument")
			}
			return runRemove(cmd, app, remove)
		}

		return runGenerate(cmd, app, firstArg(args), generate)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newGetCmd(state),
		newListCmd(state),
		newRemoveCmd(state),
		newConfigCmd(state),
	)

	return rootCmd
}

func (l *lazyApp) bindOutput(cmd *cobra.Command) {
	if l.stdout == nil {
		l.stdout = cmd.OutOrStdout()
	}
	if l.stderr == nil {
		l.stderr = cmd.ErrOrStderr()
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
