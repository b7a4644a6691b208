// Package export renders a monthly attendance grid as CSV or XLSX. Both
// formats share one layout: a header row, then four detail rows per user.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"station-attendance/pkg/attendance"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var (
	detailLabels = []string{"Check in", "Check Out", "Total Hrs", "OT Hrs (After 8hrs)"}

	// leading columns before the day numbers, and trailing totals after them.
	leadingColumns  = []string{"#", "User ID", "User Name", "Duty Status"}
	trailingColumns = []string{"Total Present Day", "Total OT Hrs"}
)

// otTotal renders with two decimals in text formats.
type otTotal float64

// ParseFormat normalises a requested format. An empty value means CSV.
func ParseFormat(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", value)
	}
}

func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func Filename(grid attendance.MonthlyGrid, format string) string {
	return grid.Title + "." + format
}

// Write renders grid to w in the given format.
func Write(w io.Writer, grid attendance.MonthlyGrid, format string) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, grid)
	case FormatXLSX:
		return WriteXLSX(w, grid)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func header(grid attendance.MonthlyGrid) []any {
	row := make([]any, 0, len(leadingColumns)+len(grid.Days)+len(trailingColumns))
	for _, col := range leadingColumns {
		row = append(row, col)
	}
	for _, day := range grid.Days {
		row = append(row, day)
	}
	for _, col := range trailingColumns {
		row = append(row, col)
	}
	return row
}

// userRows builds the four detail rows of one user. The identifying columns
// and totals are only filled on the first row; XLSX merges them downwards.
func userRows(index int, row attendance.GridRow, days []int) [][]any {
	out := make([][]any, len(detailLabels))
	for i, label := range detailLabels {
		line := make([]any, 0, len(leadingColumns)+len(days)+len(trailingColumns))
		if i == 0 {
			line = append(line, index+1, row.UserID, row.UserName)
		} else {
			line = append(line, nil, nil, nil)
		}
		line = append(line, label)

		for _, day := range days {
			rec, ok := row.Days[day]
			if !ok {
				line = append(line, nil)
				continue
			}
			switch i {
			case 0:
				line = append(line, rec.CheckIn)
			case 1:
				line = append(line, rec.CheckOut)
			case 2:
				line = append(line, hoursCell(rec.TotalHrs))
			case 3:
				line = append(line, hoursCell(rec.OtHrs))
			}
		}

		if i == 0 {
			line = append(line, row.TotalPresentDays, otTotal(row.TotalOtHrs))
		} else {
			line = append(line, nil, nil)
		}
		out[i] = line
	}
	return out
}

// hoursCell leaves zero hours blank, as the on-screen grid does.
func hoursCell(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case otTotal:
		return strconv.FormatFloat(float64(val), 'f', 2, 64)
	default:
		return fmt.Sprint(val)
	}
}
