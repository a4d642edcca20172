package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/u404/internal/app"
	"github.com/doeshing/u404/internal/domain"
	"github.com/doeshing/u404/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built once flags
// are parsed, so every subcommand sees the same configuration.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	var (
		configPath string
		noHistory  bool
		debug      bool
		container  *app.Container
	)

	resolve := func() *app.Container { return container }

	root := &cobra.Command{
		Use:   "u404 [script]",
		Short: "U404 - a small file shell with conditional scripts",
		Long: "U404 runs file commands interactively, or executes a script file " +
			"with if/else/endif blocks when a path is given.",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := app.BuildContainer(cmd.Context(), app.Options{
				ConfigPath: configPath,
				Verbose:    opts.Verbose || debug,
				NoHistory:  noHistory,
			})
			if err != nil {
				return err
			}
			container = built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, container, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $U404_CONFIG or ~/.u404/config.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging")
	root.Flags().BoolVar(&noHistory, "no-history", false, "Do not record commands in history")

	root.AddCommand(commands.NewHistoryCommand(resolve))
	closeAfterRun(root, func() error { return container.Close() })
	return root
}

// closeAfterRun wraps every runnable command in the tree so closeFn runs once
// the command returns, including on error, when cobra skips post-run hooks.
func closeAfterRun(cmd *cobra.Command, closeFn func() error) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) (err error) {
			defer func() {
				if closeErr := closeFn(); err == nil {
					err = closeErr
				}
			}()
			return run(c, args)
		}
	}
	for _, child := range cmd.Commands() {
		closeAfterRun(child, closeFn)
	}
}

func runShell(cmd *cobra.Command, container *app.Container, args []string) error {
	state := domain.NewShellState()
	sh := container.NewShell(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if len(args) == 1 {
		_, err := sh.RunScript(cmd.Context(), args[0], state)
		return err
	}
	return sh.Interactive(cmd.Context(), cmd.InOrStdin(), state)
}
