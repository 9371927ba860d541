package journal

import (
	"context"
	"slices"

	"expensejournal/internal/core"
	"expensejournal/internal/log"
)

// DefaultCategories seeds the category set when nothing has been saved yet.
func DefaultCategories() []string {
	return []string{"groceries", "transportation", "utilities", "entertainment"}
}

// Categories is the ordered set of allowed category labels, persisted as a
// JSON array of strings.
type Categories struct {
	path   string
	labels []string
	logger *log.Logger
}

func newCategories(path string, logger *log.Logger) *Categories {
	return &Categories{
		path:   path,
		labels: DefaultCategories(),
		logger: logger.WithComponent(log.ComponentCategory),
	}
}

// Add registers label, normalized to lowercase. It returns false without
// touching storage when the label is empty or already present.
func (c *Categories) Add(ctx context.Context, label string) (bool, error) {
	label = core.NormalizeCategory(label)
	if label == "" || c.Contains(label) {
		return false, nil
	}

	c.labels = append(c.labels, label)
	if err := c.save(); err != nil {
		c.labels = c.labels[:len(c.labels)-1]
		c.logger.ErrorContext(ctx, "Failed to persist categories",
			log.NewFields().WithOperation(log.OpSave).WithPath(c.path).WithError(err).ToSlice()...)
		return false, err
	}

	c.logger.InfoContext(ctx, "Category added", log.FieldCategory, label)
	return true, nil
}

// Contains reports whether label (after normalization) is registered.
func (c *Categories) Contains(label string) bool {
	return slices.Contains(c.labels, core.NormalizeCategory(label))
}

// List returns a copy of the labels in insertion order.
func (c *Categories) List() []string {
	return slices.Clone(c.labels)
}

func (c *Categories) save() error {
	return writeJSON(c.path, c.labels)
}

// load replaces the in-memory set with the persisted one. Any problem falls
// back to the defaults and is returned as a warning.
func (c *Categories) load() error {
	var raw []string
	found, err := readJSON(c.path, &raw)
	if err != nil || !found || raw == nil {
		c.labels = DefaultCategories()
		return err
	}
	c.labels = dedupe(raw)
	return nil
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = core.NormalizeCategory(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
