package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"station-attendance/config"
	"station-attendance/pkg/attendance"
	"station-attendance/pkg/export"
)

func newExportCommand() *cobra.Command {
	var (
		year, month    int
		format, output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the monthly attendance grid to a CSV or XLSX file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// --month is 1-12 here, unlike the zero-based API query.
			period, err := attendance.PeriodFromIndex(year, month-1)
			if err != nil {
				return fmt.Errorf("--month must be 1-12: %w", err)
			}
			format, err = export.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg := config.LoadConfig()
			backend, err := config.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			repos := newRepositories(backend)
			grid := attendance.BuildMonthlyGrid(repos.Users.GetAll(ctx), repos.Attendance.GetAll(ctx), period)

			if output == "" {
				output = export.Filename(grid, format)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()

			if err := export.Write(f, grid, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d user(s) to %s\n", len(grid.Rows), output)
			return f.Close()
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&year, "year", now.Year(), "Year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "Month 1-12")
	cmd.Flags().StringVar(&format, "format", export.FormatCSV, "csv or xlsx")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Output file (default <title>.<format>)")
	return cmd
}
