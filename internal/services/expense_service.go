// Package services exposes the operations a presentation shell calls. Every
// call returns a Result carrying a user-facing message; failures never panic
// and never leave the journal unusable.
package services

import (
	"context"
	"errors"
	"fmt"

	"expensejournal/internal/core"
	"expensejournal/internal/export"
	"expensejournal/internal/journal"
	"expensejournal/internal/log"
)

// ErrCategoryExists is reported when adding a category that is already known.
var ErrCategoryExists = errors.New("category already exists")

// Result is the outcome of a shell-facing operation.
type Result struct {
	Message string
	Err     error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

func success(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

func failure(err error) Result {
	return Result{Message: describe(err), Err: err}
}

// describe maps an error to the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount), errors.Is(err, core.ErrNegativeAmount), errors.Is(err, core.ErrInvalidDate):
		return "Invalid input. Please ensure amount is a non-negative number and date is in YYYY-MM-DD format."
	case errors.Is(err, core.ErrEmptyCategory):
		return "Invalid input. Category cannot be empty."
	case errors.Is(err, journal.ErrInvalidIndex):
		return "Invalid index."
	case errors.Is(err, core.ErrNoExpenses):
		return "No expenses recorded."
	case errors.Is(err, export.ErrNothingToExport):
		return "No expenses to export."
	case errors.Is(err, export.ErrUnknownFormat):
		return "Invalid choice. Export format must be excel, text or sqlite."
	case errors.Is(err, export.ErrNoDestination):
		return "Export cancelled."
	default:
		return fmt.Sprintf("Operation failed: %v", err)
	}
}

// ExpenseService is the boundary between the shell and the journal.
type ExpenseService struct {
	store  *journal.Store
	logger *log.Logger
}

func NewExpenseService(store *journal.Store, logger *log.Logger) *ExpenseService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &ExpenseService{
		store:  store,
		logger: logger.WithComponent(log.ComponentExpense),
	}
}

// AddExpense validates raw input and appends a new record.
func (s *ExpenseService) AddExpense(ctx context.Context, amount, description, date, category string) Result {
	e, err := core.NewExpense(amount, description, date, category)
	if err != nil {
		return s.fail(ctx, log.OpCreate, err)
	}
	if err := s.store.Add(ctx, e); err != nil {
		return s.fail(ctx, log.OpCreate, err)
	}
	return success("Expense added successfully!")
}

// EditExpense replaces the record at index.
func (s *ExpenseService) EditExpense(ctx context.Context, index int, amount, description, date, category string) Result {
	if _, err := s.store.Expense(index); err != nil {
		return s.fail(ctx, log.OpUpdate, err)
	}
	e, err := core.NewExpense(amount, description, date, category)
	if err != nil {
		return s.fail(ctx, log.OpUpdate, err)
	}
	if err := s.store.Edit(ctx, index, e); err != nil {
		return s.fail(ctx, log.OpUpdate, err)
	}
	return success("Expense updated successfully!")
}

// DeleteExpense removes the record at index. Later indices shift down.
func (s *ExpenseService) DeleteExpense(ctx context.Context, index int) Result {
	if err := s.store.Delete(ctx, index); err != nil {
		return s.fail(ctx, log.OpDelete, err)
	}
	return success("Expense deleted successfully.")
}

// AddCategory registers a new lowercase category label.
func (s *ExpenseService) AddCategory(ctx context.Context, label string) Result {
	label = core.NormalizeCategory(label)
	if label == "" {
		return s.fail(ctx, log.OpCreate, core.ErrEmptyCategory)
	}
	added, err := s.store.Categories().Add(ctx, label)
	if err != nil {
		return s.fail(ctx, log.OpCreate, err)
	}
	if !added {
		return Result{Message: fmt.Sprintf("Category '%s' already exists.", label), Err: ErrCategoryExists}
	}
	return success("Category '%s' added.", label)
}

// Categories lists the known categories in insertion order.
func (s *ExpenseService) Categories() []string {
	return s.store.Categories().List()
}

// Expense returns the record at index.
func (s *ExpenseService) Expense(index int) (core.Expense, error) {
	return s.store.Expense(index)
}

// Expenses returns every record in journal order.
func (s *ExpenseService) Expenses() []core.Expense {
	return s.store.Expenses()
}

// Summary computes the aggregate report. An empty journal yields a zero
// Report and a Result carrying core.ErrNoExpenses.
func (s *ExpenseService) Summary(ctx context.Context) (core.Report, Result) {
	r, err := core.Summarize(s.store.Expenses())
	if err != nil {
		s.logger.DebugContext(ctx, "Summary unavailable", log.FieldOperation, log.OpSummary, log.FieldError, err)
		return core.Report{}, failure(err)
	}
	return r, success("Summary of %d expenses.", r.Count)
}

// Export writes the current records to path in the named format.
func (s *ExpenseService) Export(ctx context.Context, format, path string) Result {
	f, err := export.ParseFormat(format)
	if err != nil {
		return s.fail(ctx, log.OpExport, err)
	}
	if err := export.Export(ctx, f, path, s.store.Expenses()); err != nil {
		return s.fail(ctx, log.OpExport, err)
	}
	s.logger.InfoContext(ctx, "Expenses exported",
		log.FieldOperation, log.OpExport,
		log.FieldFormat, string(f),
		log.FieldPath, path,
		log.FieldCount, s.store.Len())
	return success("Expenses exported to '%s'.", path)
}

func (s *ExpenseService) fail(ctx context.Context, op string, err error) Result {
	s.logger.WarnContext(ctx, "Operation failed",
		log.NewFields().WithOperation(op).WithError(err).ToSlice()...)
	return failure(err)
}
