package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"expensejournal/internal/core"
)

type expenseInput struct {
	Amount      string
	Description string
	Date        string
	Category    string
}

// promptExpense asks for every field, pre-filled with the values in in.
func promptExpense(in *expenseInput, categories []string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount spent").
				Value(&in.Amount).
				Validate(func(s string) error {
					_, err := core.ParseMoney(s)
					return err
				}),
			huh.NewInput().
				Title("Description of purchase").
				Value(&in.Description),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&in.Date).
				Validate(func(s string) error {
					_, err := core.ParseDate(s)
					return err
				}),
			huh.NewInput().
				Title("Category").
				Description(fmt.Sprintf("Known: %v", categories)).
				Suggestions(categories).
				Value(&in.Category),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	return nil
}
