package export

import (
	"context"

	"expensejournal/internal/core"
	"expensejournal/internal/storage"
)

// writeSQLite replaces the expenses table of the database at path. The
// replacement is transactional, so a failure keeps the previous rows.
func writeSQLite(ctx context.Context, path string, expenses []core.Expense) error {
	repo, err := storage.NewSQLiteRepository(path)
	if err != nil {
		return err
	}
	defer repo.Close()

	return repo.ReplaceExpenses(ctx, expenses)
}
