// Package export projects journal records into external file formats.
// Every exporter is read-only with respect to the journal.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expensejournal/internal/core"
)

type Format string

const (
	FormatSpreadsheet Format = "excel"
	FormatText        Format = "text"
	FormatSQLite      Format = "sqlite"
)

var (
	ErrNothingToExport = errors.New("no expenses to export")
	ErrUnknownFormat   = errors.New("unknown export format")
	ErrNoDestination   = errors.New("no destination path")
)

var aliases = map[string]Format{
	"excel":       FormatSpreadsheet,
	"xlsx":        FormatSpreadsheet,
	"spreadsheet": FormatSpreadsheet,
	"text":        FormatText,
	"txt":         FormatText,
	"sqlite":      FormatSQLite,
	"db":          FormatSQLite,
}

// ParseFormat accepts the canonical names and a few common aliases.
func ParseFormat(s string) (Format, error) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q (want excel, text or sqlite)", ErrUnknownFormat, s)
	}
	return f, nil
}

// Formats lists the canonical format names.
func Formats() []Format {
	return []Format{FormatSpreadsheet, FormatText, FormatSQLite}
}

// DefaultExtension is the file extension conventionally used for f.
func (f Format) DefaultExtension() string {
	switch f {
	case FormatSpreadsheet:
		return ".xlsx"
	case FormatText:
		return ".txt"
	case FormatSQLite:
		return ".db"
	default:
		return ""
	}
}

// Exporter writes a snapshot of expenses to path.
type Exporter interface {
	Export(ctx context.Context, path string, expenses []core.Expense) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(ctx context.Context, path string, expenses []core.Expense) error

func (fn ExporterFunc) Export(ctx context.Context, path string, expenses []core.Expense) error {
	return fn(ctx, path, expenses)
}

var exporters = map[Format]Exporter{
	FormatSpreadsheet: ExporterFunc(writeSpreadsheet),
	FormatText:        ExporterFunc(writeText),
	FormatSQLite:      ExporterFunc(writeSQLite),
}

// Export writes expenses to path in format f. An empty snapshot returns
// ErrNothingToExport before the destination is touched.
func Export(ctx context.Context, f Format, path string, expenses []core.Expense) error {
	exp, ok := exporters[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if len(expenses) == 0 {
		return ErrNothingToExport
	}
	if strings.TrimSpace(path) == "" {
		return ErrNoDestination
	}
	if err := exp.Export(ctx, path, expenses); err != nil {
		return fmt.Errorf("export %s to %s: %w", f, path, err)
	}
	return nil
}
