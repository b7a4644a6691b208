package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"station-attendance/pkg/attendance"
)

func newHoursCommand() *cobra.Command {
	var checkIn, checkOut string

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Compute total and overtime hours for one shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := attendance.ComputeHours(checkIn, checkOut)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Hrs: %.2f\n", hours.TotalHrs)
			fmt.Fprintf(out, "OT Hrs:    %.2f\n", hours.OtHrs)
			return nil
		},
	}

	cmd.Flags().StringVar(&checkIn, "in", "", "Check-in time HH:MM")
	cmd.Flags().StringVar(&checkOut, "out", "", "Check-out time HH:MM")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
