package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"station-attendance/pkg/attendance"
)

func WriteCSV(w io.Writer, grid attendance.MonthlyGrid) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(toStrings(header(grid))); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range grid.Rows {
		for _, line := range userRows(i, row, grid.Days) {
			if err := writer.Write(toStrings(line)); err != nil {
				return fmt.Errorf("write csv row for %s: %w", row.UserID, err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func toStrings(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellString(c)
	}
	return out
}
