// Command bibliotheque bootstraps the event store schema, serves the ops endpoints and runs a demo scenario.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	envFiles []string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "bibliotheque",
		Short:         "Book custody across personal loans, borrows and member requests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "env files to read before the environment")

	root.AddCommand(
		newMigrateCommand(opts),
		newServeCommand(opts),
		newDemoCommand(),
	)

	return root
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.envFiles...)
}
