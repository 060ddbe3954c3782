package main

import (
	"fmt"
	"io"
	"os"

	"go-cafe-pos/internal/app"
	"go-cafe-pos/internal/service"

	"github.com/spf13/cobra"
)

func newReportCmd(boot bootFunc) *cobra.Command {
	var rng, query, out string

	report := &cobra.Command{
		Use:   "report",
		Short: "Sales report",
	}
	report.PersistentFlags().StringVar(&rng, "range", "all", "all, today, week or month")
	report.PersistentFlags().StringVar(&query, "q", "", "only transactions with an item name containing this text")

	filter := func() service.ReportFilter {
		return service.ReportFilter{Range: service.ReportRange(rng), Query: query}
	}

	// posctl report summary
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Print revenue, sales count and average order value",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, boot, func(a *app.App) error {
				s, err := a.Reports.Summary(cmd.Context(), filter())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Total revenue:       Rp %s\n", s.TotalRevenue.StringFixed(0))
				fmt.Fprintf(w, "Total sales:         %d\n", s.TotalSales)
				fmt.Fprintf(w, "Products sold:       %d\n", s.TotalProducts)
				fmt.Fprintf(w, "Average order value: Rp %s\n", s.AverageOrderValue.StringFixed(0))
				return nil
			})
		},
	}

	// posctl report export
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the sales report as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, boot, func(a *app.App) error {
				var w io.Writer = cmd.OutOrStdout()
				if out != "" && out != "-" {
					f, err := os.Create(out)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				if err := a.Reports.ExportCSV(cmd.Context(), filter(), w); err != nil {
					return err
				}
				if out != "" && out != "-" {
					fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", out)
				}
				return nil
			})
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	report.AddCommand(summary, export)
	return report
}
