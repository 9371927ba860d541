package log

import "expensejournal/internal/core"

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldPath        = "path"
	FieldIndex       = "index"
	FieldCount       = "count"
	FieldFormat      = "format"
	FieldExpenseDesc = "expense_description"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
	FieldCategory    = "category"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentJournal  = "journal"
	ComponentCategory = "category"
	ComponentExpense  = "expense"
	ComponentExport   = "export"
	ComponentStorage  = "storage"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpLoad    = "load"
	OpSave    = "save"
	OpSummary = "summary"
	OpExport  = "export"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithIndex adds the journal position of the record being touched
func (f LogFields) WithIndex(i int) LogFields {
	f[FieldIndex] = i
	return f
}

// WithPath adds a file path field
func (f LogFields) WithPath(path string) LogFields {
	f[FieldPath] = path
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(e core.Expense) LogFields {
	f[FieldExpenseDesc] = e.Description
	f[FieldAmountCents] = e.Amount.Cents
	f[FieldDate] = e.Date.String()
	f[FieldCategory] = e.Category
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
