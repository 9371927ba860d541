package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"expensejournal/internal/atomicfile"
	"expensejournal/internal/core"
)

// SheetName is the worksheet that holds exported records.
const SheetName = "Expenses"

// Header is the first row of the spreadsheet export.
var Header = []any{"amount", "description", "date", "category"}

func writeSpreadsheet(_ context.Context, path string, expenses []core.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{e.Amount.Float(), e.Description, e.Date.String(), e.Category}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	return atomicfile.Write(path, 0o644, func(w io.Writer) error {
		return f.Write(w)
	})
}
