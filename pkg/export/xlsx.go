package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"station-attendance/pkg/attendance"
)

// WriteXLSX writes a single-sheet workbook named after the grid title.
func WriteXLSX(w io.Writer, grid attendance.MonthlyGrid) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := grid.Title
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	headerRow := header(grid)
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headerRow), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, bold); err != nil {
		return err
	}

	dayCols := len(grid.Days)
	totalsCol := len(leadingColumns) + dayCols + 1

	line := 2
	for i, row := range grid.Rows {
		first := line
		for _, cells := range userRows(i, row, grid.Days) {
			if err := setRow(f, sheet, line, cells); err != nil {
				return fmt.Errorf("write row for %s: %w", row.UserID, err)
			}
			line++
		}
		last := line - 1

		// identifying columns and totals span the four detail rows
		for _, col := range []int{1, 2, 3, totalsCol, totalsCol + 1} {
			top, _ := excelize.CoordinatesToCellName(col, first)
			bottom, _ := excelize.CoordinatesToCellName(col, last)
			if err := f.MergeCell(sheet, top, bottom); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "B", "D", 18); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, line int, cells []any) error {
	values := make([]any, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case nil:
			values[i] = ""
		case otTotal:
			values[i] = attendance.Round2(float64(v))
		default:
			values[i] = v
		}
	}
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
