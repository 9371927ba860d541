// Package storage maintains the single-table SQLite database that expenses
// are exported into.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"expensejournal/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReplaceExpenses swaps the table contents for expenses in one transaction.
// On any error the previous rows are kept.
func (r *SQLiteRepository) ReplaceExpenses(ctx context.Context, expenses []core.Expense) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO expenses (amount, description, date, category) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range expenses {
		if _, err = stmt.ExecContext(ctx, e.Amount.Float(), e.Description, e.Date.String(), e.Category); err != nil {
			return fmt.Errorf("insert expense %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.DebugContext(ctx, "Expenses written to SQLite", "count", len(expenses))
	return nil
}

// ListExpenses returns the table rows in insertion order.
func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT amount, description, date, category FROM expenses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var (
			amount   float64
			desc     string
			date     string
			category string
		)
		if err := rows.Scan(&amount, &desc, &date, &category); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse stored date: %w", err)
		}
		expenses = append(expenses, core.Expense{
			Amount:      core.Money{Cents: decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart()},
			Description: desc,
			Date:        d,
			Category:    category,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}
