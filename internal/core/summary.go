package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoExpenses is returned by Summarize when there is nothing to summarize.
var ErrNoExpenses = errors.New("no expenses recorded")

var hundred = decimal.NewFromInt(100)

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name    string
	Amount  Money
	Percent decimal.Decimal // share of Report.Total, 0-100 with two decimals
}

// IndexedExpense is an expense together with its position in the journal.
type IndexedExpense struct {
	Index int
	Expense
}

// Report is the aggregate view over every recorded expense.
type Report struct {
	Count        int
	Total        Money
	ByCategory   []CategoryAmount // first-appearance order
	FirstDate    Date
	LastDate     Date
	Days         int // inclusive span, at least 1
	AverageDaily decimal.Decimal
	Highest      IndexedExpense
	Lowest       IndexedExpense
}

// Summarize computes a Report over expenses. Ties for highest and lowest go
// to the earliest record.
func Summarize(expenses []Expense) (Report, error) {
	if len(expenses) == 0 {
		return Report{}, ErrNoExpenses
	}

	r := Report{
		Count:     len(expenses),
		FirstDate: expenses[0].Date,
		LastDate:  expenses[0].Date,
		Highest:   IndexedExpense{Index: 0, Expense: expenses[0]},
		Lowest:    IndexedExpense{Index: 0, Expense: expenses[0]},
	}

	pos := make(map[string]int)
	for i, e := range expenses {
		r.Total = r.Total.Add(e.Amount)

		if idx, ok := pos[e.Category]; ok {
			r.ByCategory[idx].Amount = r.ByCategory[idx].Amount.Add(e.Amount)
		} else {
			pos[e.Category] = len(r.ByCategory)
			r.ByCategory = append(r.ByCategory, CategoryAmount{Name: e.Category, Amount: e.Amount})
		}

		if e.Date.Before(r.FirstDate.Time) {
			r.FirstDate = e.Date
		}
		if e.Date.After(r.LastDate.Time) {
			r.LastDate = e.Date
		}
		if e.Amount.Cents > r.Highest.Amount.Cents {
			r.Highest = IndexedExpense{Index: i, Expense: e}
		}
		if e.Amount.Cents < r.Lowest.Amount.Cents {
			r.Lowest = IndexedExpense{Index: i, Expense: e}
		}
	}

	r.Days = r.FirstDate.DaysUntil(r.LastDate) + 1
	r.AverageDaily = r.Total.Decimal().DivRound(decimal.NewFromInt(int64(r.Days)), 2)

	total := r.Total.Decimal()
	for i := range r.ByCategory {
		if total.IsZero() {
			r.ByCategory[i].Percent = decimal.Zero
			continue
		}
		r.ByCategory[i].Percent = r.ByCategory[i].Amount.Decimal().Mul(hundred).DivRound(total, 2)
	}

	return r, nil
}

// Category returns the aggregate for name, if present.
func (r Report) Category(name string) (CategoryAmount, bool) {
	for _, c := range r.ByCategory {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryAmount{}, false
}
