package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"

	"expensejournal/internal/config"
	"expensejournal/internal/log"
)

func newRuntime(t *testing.T) (*Runtime, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		DataDir:        t.TempDir(),
		ExpensesFile:   "expenses.json",
		CategoriesFile: "categories.json",
		LogLevel:       "error",
		LogFormat:      "text",
	}
	assert.NoError(t, cfg.Validate())

	var out bytes.Buffer
	svc := OpenService(context.Background(), cfg, log.Discard())
	return &Runtime{Ctx: context.Background(), Service: svc, Out: &out}, &out
}

// run parses args with the real command tree and executes the selected command.
func run(t *testing.T, rt *Runtime, args ...string) error {
	t.Helper()
	var cli Commands
	parser, err := kong.New(&cli, kong.Name("expensejournal"), kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }))
	assert.NoError(t, err)
	ctx, err := parser.Parse(args)
	assert.NoError(t, err)
	return ctx.Run(rt)
}

func TestAddListAndSummary(t *testing.T) {
	rt, out := newRuntime(t)

	assert.NoError(t, run(t, rt, "add", "10.00", "coffee", "food", "--date", "2024-01-01"))
	assert.NoError(t, run(t, rt, "add", "20.00", "bus", "transportation", "-d", "2024-01-02"))
	assert.Contains(t, out.String(), "Expense added successfully!")

	out.Reset()
	assert.NoError(t, run(t, rt, "list"))
	assert.Contains(t, out.String(), "[0]")
	assert.Contains(t, out.String(), "Date: 2024-01-02, Amount: $20.00, Description: bus, Category: transportation")

	out.Reset()
	assert.NoError(t, run(t, rt, "summary"))
	s := out.String()
	assert.Contains(t, s, "Total expenses: $30.00")
	assert.Contains(t, s, "Average daily expense: $15.00")
	assert.Contains(t, s, "Food: $10.00 (33.33% of total spending)")
	assert.Contains(t, s, "Transportation: $20.00 (66.67% of total spending)")
	assert.Contains(t, s, "Highest expense: $20.00 on 2024-01-02, Description: bus")
}

func TestAddWithoutInputFailsWhenNotInteractive(t *testing.T) {
	rt, out := newRuntime(t)
	err := run(t, rt, "add")
	assert.Error(t, err)
	assert.Contains(t, out.String(), "required")
	assert.Equal(t, 0, len(rt.Service.Expenses()))
}

func TestAddInvalidInput(t *testing.T) {
	rt, out := newRuntime(t)
	err := run(t, rt, "add", "abc", "x", "food")
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Invalid input")
}

func TestEditKeepsUnsetFields(t *testing.T) {
	rt, _ := newRuntime(t)
	assert.NoError(t, run(t, rt, "add", "5", "tea", "groceries", "-d", "2024-03-01"))
	assert.NoError(t, run(t, rt, "edit", "0", "--amount", "7.25"))

	e, err := rt.Service.Expense(0)
	assert.NoError(t, err)
	assert.Equal(t, "7.25", e.Amount.String())
	assert.Equal(t, "tea", e.Description)
	assert.Equal(t, "2024-03-01", e.Date.String())
	assert.Equal(t, "groceries", e.Category)

	assert.Error(t, run(t, rt, "edit", "4", "--amount", "1"))
}

func TestDelete(t *testing.T) {
	rt, out := newRuntime(t)
	assert.NoError(t, run(t, rt, "add", "1", "a", "groceries"))
	assert.NoError(t, run(t, rt, "delete", "0"))
	assert.Contains(t, out.String(), "Expense deleted successfully.")

	out.Reset()
	assert.Error(t, run(t, rt, "delete", "0"))
	assert.Contains(t, out.String(), "Invalid index.")
}

func TestCategoryCommands(t *testing.T) {
	rt, out := newRuntime(t)
	assert.NoError(t, run(t, rt, "category", "add", "Pets"))
	assert.Error(t, run(t, rt, "category", "add", "pets"))

	out.Reset()
	assert.NoError(t, run(t, rt, "category", "list"))
	assert.Equal(t, "groceries\ntransportation\nutilities\nentertainment\npets\n", out.String())
}

func TestSummaryEmpty(t *testing.T) {
	rt, out := newRuntime(t)
	assert.NoError(t, run(t, rt, "summary"))
	assert.Contains(t, out.String(), "No expenses recorded.")
}

func TestExportCommand(t *testing.T) {
	rt, out := newRuntime(t)
	dest := filepath.Join(t.TempDir(), "out.txt")

	assert.Error(t, run(t, rt, "export", "text", dest))
	assert.Contains(t, out.String(), "No expenses to export.")
	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, run(t, rt, "add", "3", "pen", "office", "-d", "2024-02-02"))
	assert.NoError(t, run(t, rt, "export", "txt", dest))
	b, err := os.ReadFile(dest)
	assert.NoError(t, err)
	assert.Equal(t, "Date: 2024-02-02, Amount: $3.00, Description: pen, Category: office", strings.TrimSpace(string(b)))

	assert.Error(t, run(t, rt, "export", "pdf", dest))
}
