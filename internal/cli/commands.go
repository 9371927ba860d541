package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"expensejournal/internal/core"
	"expensejournal/internal/export"
)

var errMissingInput = errors.New("amount, description and category are required (or run interactively)")

type AddCmd struct {
	Amount      string `arg:"" optional:"" help:"Amount spent, e.g. 12.50."`
	Description string `arg:"" optional:"" help:"Description of the purchase."`
	Category    string `arg:"" optional:"" help:"Category; unknown categories are added automatically."`
	Date        string `short:"d" help:"Date as YYYY-MM-DD (default today)."`
}

func (cmd *AddCmd) Run(rt *Runtime) error {
	if cmd.Amount == "" && rt.Interactive {
		in := expenseInput{Date: today()}
		if err := promptExpense(&in, rt.Service.Categories()); err != nil {
			return err
		}
		cmd.Amount, cmd.Description, cmd.Date, cmd.Category = in.Amount, in.Description, in.Date, in.Category
	}
	if cmd.Amount == "" || cmd.Category == "" {
		printError(rt.Out, errMissingInput.Error())
		return errMissingInput
	}
	if cmd.Date == "" {
		cmd.Date = today()
	}
	return printResult(rt.Out, rt.Service.AddExpense(rt.Ctx, cmd.Amount, cmd.Description, cmd.Date, cmd.Category))
}

type EditCmd struct {
	Index       int     `arg:"" help:"Index of the expense to edit (see list)."`
	Amount      *string `help:"New amount."`
	Description *string `help:"New description."`
	Date        *string `short:"d" help:"New date as YYYY-MM-DD."`
	Category    *string `help:"New category."`
}

// Run keeps the current value for every field that is not given.
func (cmd *EditCmd) Run(rt *Runtime) error {
	current, err := rt.Service.Expense(cmd.Index)
	if err != nil {
		printError(rt.Out, "Invalid index.")
		return err
	}

	in := expenseInput{
		Amount:      pick(cmd.Amount, current.Amount.String()),
		Description: pick(cmd.Description, current.Description),
		Date:        pick(cmd.Date, current.Date.String()),
		Category:    pick(cmd.Category, current.Category),
	}
	if cmd.Amount == nil && cmd.Description == nil && cmd.Date == nil && cmd.Category == nil && rt.Interactive {
		if err := promptExpense(&in, rt.Service.Categories()); err != nil {
			return err
		}
	}
	return printResult(rt.Out, rt.Service.EditExpense(rt.Ctx, cmd.Index, in.Amount, in.Description, in.Date, in.Category))
}

func pick(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}

type DeleteCmd struct {
	Index int `arg:"" help:"Index of the expense to delete. Later indices shift down by one."`
}

func (cmd *DeleteCmd) Run(rt *Runtime) error {
	return printResult(rt.Out, rt.Service.DeleteExpense(rt.Ctx, cmd.Index))
}

type ListCmd struct{}

func (cmd *ListCmd) Run(rt *Runtime) error {
	expenses := rt.Service.Expenses()
	if len(expenses) == 0 {
		printInfof(rt.Out, "No expenses recorded.")
		return nil
	}
	printExpenses(rt.Out, expenses)
	return nil
}

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name; stored lowercase."`
}

func (cmd *CategoryAddCmd) Run(rt *Runtime) error {
	return printResult(rt.Out, rt.Service.AddCategory(rt.Ctx, cmd.Name))
}

type CategoryListCmd struct{}

func (cmd *CategoryListCmd) Run(rt *Runtime) error {
	for _, c := range rt.Service.Categories() {
		_, _ = fmt.Fprintln(rt.Out, c)
	}
	return nil
}

type CategoryCmd struct {
	Add  CategoryAddCmd  `cmd:"" help:"Add a category."`
	List CategoryListCmd `cmd:"" default:"1" help:"List categories."`
}

type SummaryCmd struct{}

func (cmd *SummaryCmd) Run(rt *Runtime) error {
	report, res := rt.Service.Summary(rt.Ctx)
	if !res.OK() {
		if errors.Is(res.Err, core.ErrNoExpenses) {
			printInfof(rt.Out, "%s", res.Message)
			return nil
		}
		return printResult(rt.Out, res)
	}
	renderReport(rt.Out, report)
	return nil
}

type ExportCmd struct {
	Format string `arg:"" help:"Export format: excel, text or sqlite."`
	Path   string `arg:"" optional:"" type:"path" help:"Destination file (default expenses.<ext> in the current directory)."`
}

func (cmd *ExportCmd) Run(rt *Runtime) error {
	path := cmd.Path
	if path == "" {
		if f, err := export.ParseFormat(cmd.Format); err == nil {
			path = "expenses" + f.DefaultExtension()
		}
	}
	return printResult(rt.Out, rt.Service.Export(rt.Ctx, cmd.Format, path))
}

type Commands struct {
	Add      AddCmd      `cmd:"" help:"Record a new expense."`
	Edit     EditCmd     `cmd:"" help:"Edit an expense by index."`
	Delete   DeleteCmd   `cmd:"" help:"Delete an expense by index."`
	List     ListCmd     `cmd:"" help:"List expenses with their indices."`
	Category CategoryCmd `cmd:"" help:"Manage categories."`
	Summary  SummaryCmd  `cmd:"" help:"Show aggregate statistics."`
	Export   ExportCmd   `cmd:"" help:"Export expenses to a spreadsheet, text file or SQLite database."`
}

func today() string {
	return time.Now().Format(core.DateLayout)
}
