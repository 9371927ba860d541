package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"expensejournal/internal/core"
	"expensejournal/internal/export"
	"expensejournal/internal/services"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	headerStyle  = lipgloss.NewStyle().Bold(true)
	indexStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})

	titleCase = cases.Title(language.English)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// printResult reports res and hands back its error so commands can exit
// non-zero.
func printResult(w io.Writer, res services.Result) error {
	if res.OK() {
		printSuccess(w, res.Message)
		return nil
	}
	printError(w, res.Message)
	return res.Err
}

func printExpenses(w io.Writer, expenses []core.Expense) {
	for i, e := range expenses {
		_, _ = fmt.Fprintf(w, "%s %s\n", indexStyle.Render(fmt.Sprintf("[%d]", i)), export.FormatLine(e))
	}
}

// renderReport writes the summary as plain lines, category percentages
// relative to the overall total.
func renderReport(w io.Writer, r core.Report) {
	line := func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, format+"\n", args...)
	}

	line("%s", headerStyle.Render(fmt.Sprintf("Total expenses: $%s", r.Total)))
	for _, c := range r.ByCategory {
		line("%s: $%s", titleCase.String(c.Name), c.Amount)
	}
	line("Average daily expense: $%s (%d days, %s to %s)", r.AverageDaily.StringFixed(2), r.Days, r.FirstDate, r.LastDate)
	line("Highest expense: $%s on %s, Description: %s", r.Highest.Amount, r.Highest.Date, r.Highest.Description)
	line("Lowest expense: $%s on %s, Description: %s", r.Lowest.Amount, r.Lowest.Date, r.Lowest.Description)
	line("")
	line("%s", headerStyle.Render("Category Statistics:"))
	for _, c := range r.ByCategory {
		line("%s: $%s (%s%% of total spending)", titleCase.String(c.Name), c.Amount, c.Percent.StringFixed(2))
	}
}
