// Package journal holds the ordered expense records and the category set,
// and persists both to JSON files after every mutation.
package journal

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"expensejournal/internal/core"
	"expensejournal/internal/log"
)

// ErrInvalidIndex is returned when a record position is outside the journal.
var ErrInvalidIndex = errors.New("invalid index")

// Paths locates the two persisted files.
type Paths struct {
	Expenses   string
	Categories string
}

// Store is the in-memory record list plus its category set. Records are
// addressed by position; a delete shifts every later position down by one.
type Store struct {
	path       string
	expenses   []core.Expense
	categories *Categories
	logger     *log.Logger
	warnings   []error
}

// New returns an empty store with default categories. Call Load to read
// persisted state.
func New(paths Paths, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Store{
		path:       paths.Expenses,
		categories: newCategories(paths.Categories, logger),
		logger:     logger.WithComponent(log.ComponentJournal),
	}
}

// Open creates a store and loads it.
func Open(ctx context.Context, paths Paths, logger *log.Logger) *Store {
	s := New(paths, logger)
	s.Load(ctx)
	return s
}

// Load reads both files. A missing file yields the empty or default
// collection. An unreadable or corrupt file is reset the same way and the
// problem is kept in Warnings; Load never fails.
func (s *Store) Load(ctx context.Context) {
	s.warnings = nil

	if err := s.categories.load(); err != nil {
		s.warn(ctx, "Categories file unusable, using defaults", s.categories.path, err)
	}

	var loaded []core.Expense
	found, err := readJSON(s.path, &loaded)
	for i := range loaded {
		loaded[i].Category = core.NormalizeCategory(loaded[i].Category)
	}
	if err == nil && found {
		err = validateAll(loaded)
	}
	if err != nil {
		s.warn(ctx, "Expenses file unusable, starting empty", s.path, err)
		loaded = nil
	}
	s.expenses = loaded

	// Hand-edited files may reference categories the set has never seen.
	for _, e := range s.expenses {
		if _, err := s.categories.Add(ctx, e.Category); err != nil {
			s.warn(ctx, "Could not register category from expenses file", s.categories.path, err)
			break
		}
	}

	s.logger.DebugContext(ctx, "Journal loaded",
		log.FieldOperation, log.OpLoad,
		log.FieldCount, len(s.expenses),
		log.FieldPath, s.path)
}

func (s *Store) warn(ctx context.Context, msg, path string, err error) {
	s.warnings = append(s.warnings, err)
	s.logger.WarnContext(ctx, msg,
		log.NewFields().WithOperation(log.OpLoad).WithPath(path).WithError(err).ToSlice()...)
}

func validateAll(expenses []core.Expense) error {
	for i, e := range expenses {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("%w: record %d: %v", errCorrupt, i, err)
		}
	}
	return nil
}

// Warnings returns the problems found by the last Load.
func (s *Store) Warnings() []error {
	return slices.Clone(s.warnings)
}

// Save rewrites the expenses file with the current records.
func (s *Store) Save(ctx context.Context) error {
	records := s.expenses
	if records == nil {
		records = []core.Expense{}
	}
	if err := writeJSON(s.path, records); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist expenses",
			log.NewFields().WithOperation(log.OpSave).WithPath(s.path).WithError(err).ToSlice()...)
		return err
	}
	return nil
}

// Categories exposes the category set.
func (s *Store) Categories() *Categories {
	return s.categories
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.expenses)
}

// Expenses returns a snapshot of all records in order.
func (s *Store) Expenses() []core.Expense {
	return slices.Clone(s.expenses)
}

// Expense returns the record at index.
func (s *Store) Expense(index int) (core.Expense, error) {
	if !s.inBounds(index) {
		return core.Expense{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return s.expenses[index], nil
}

// Add appends e, registering its category first if needed.
func (s *Store) Add(ctx context.Context, e core.Expense) error {
	if err := s.prepare(ctx, &e); err != nil {
		return err
	}

	s.expenses = append(s.expenses, e)
	if err := s.Save(ctx); err != nil {
		s.expenses = s.expenses[:len(s.expenses)-1]
		return err
	}

	s.logger.InfoContext(ctx, "Expense added",
		log.NewFields().WithOperation(log.OpCreate).WithIndex(len(s.expenses)-1).WithExpense(e).ToSlice()...)
	return nil
}

// Edit overwrites the record at index.
func (s *Store) Edit(ctx context.Context, index int, e core.Expense) error {
	if !s.inBounds(index) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if err := s.prepare(ctx, &e); err != nil {
		return err
	}

	prev := s.expenses[index]
	s.expenses[index] = e
	if err := s.Save(ctx); err != nil {
		s.expenses[index] = prev
		return err
	}

	s.logger.InfoContext(ctx, "Expense updated",
		log.NewFields().WithOperation(log.OpUpdate).WithIndex(index).WithExpense(e).ToSlice()...)
	return nil
}

// Delete removes the record at index; later records move down one position.
func (s *Store) Delete(ctx context.Context, index int) error {
	if !s.inBounds(index) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	prev := slices.Clone(s.expenses)
	removed := s.expenses[index]
	s.expenses = slices.Delete(s.expenses, index, index+1)
	if err := s.Save(ctx); err != nil {
		s.expenses = prev
		return err
	}

	s.logger.InfoContext(ctx, "Expense deleted",
		log.NewFields().WithOperation(log.OpDelete).WithIndex(index).WithExpense(removed).ToSlice()...)
	return nil
}

func (s *Store) inBounds(index int) bool {
	return index >= 0 && index < len(s.expenses)
}

// prepare normalizes and validates e and makes sure its category exists.
func (s *Store) prepare(ctx context.Context, e *core.Expense) error {
	e.Category = core.NormalizeCategory(e.Category)
	if err := e.Validate(); err != nil {
		return err
	}
	if _, err := s.categories.Add(ctx, e.Category); err != nil {
		return fmt.Errorf("register category %q: %w", e.Category, err)
	}
	return nil
}
