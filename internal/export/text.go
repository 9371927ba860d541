package export

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"expensejournal/internal/atomicfile"
	"expensejournal/internal/core"
)

// FormatLine renders one record in the plain-text export layout.
func FormatLine(e core.Expense) string {
	return fmt.Sprintf("Date: %s, Amount: $%s, Description: %s, Category: %s",
		e.Date, e.Amount, e.Description, e.Category)
}

func writeText(_ context.Context, path string, expenses []core.Expense) error {
	return atomicfile.Write(path, 0o644, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, e := range expenses {
			if _, err := fmt.Fprintln(bw, FormatLine(e)); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}
