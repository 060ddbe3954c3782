package main

import (
	"context"
	"fmt"
	"os"

	"go-cafe-pos/internal/app"
	"go-cafe-pos/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(bootApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootFunc opens the store named in the environment. Tests swap it for an
// in-memory app.
type bootFunc func(ctx context.Context) (*app.App, error)

func bootApp(ctx context.Context) (*app.App, error) {
	a, err := app.New(ctx, config.LoadConfig())
	if err != nil {
		return nil, err
	}
	go a.Hub.Run()
	return a, nil
}

func newRootCmd(boot bootFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "posctl",
		Short:         "Operator tools for the cafe POS store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReportCmd(boot))
	root.AddCommand(newCategoriesCmd(boot))
	root.AddCommand(newCartCmd(boot))
	return root
}

// withApp boots the app, runs fn and closes the store.
func withApp(cmd *cobra.Command, boot bootFunc, fn func(a *app.App) error) error {
	a, err := boot(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
