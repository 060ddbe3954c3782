package main

import (
	"fmt"

	"go-cafe-pos/internal/app"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(boot bootFunc) *cobra.Command {
	categories := &cobra.Command{
		Use:   "categories",
		Short: "Category maintenance",
	}

	// posctl categories seed
	categories.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Write the default categories if none exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, boot, func(a *app.App) error {
				cats, err := a.Catalog.ListCategories(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range cats {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", c.ID, c.Name)
				}
				return nil
			})
		},
	})
	return categories
}

func newCartCmd(boot bootFunc) *cobra.Command {
	cart := &cobra.Command{
		Use:   "cart",
		Short: "Cart maintenance",
	}

	// posctl cart clear
	cart.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the shared cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, boot, func(a *app.App) error {
				if err := a.Cart.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
				return nil
			})
		},
	})
	return cart
}
