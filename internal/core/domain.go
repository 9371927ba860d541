package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used for every persisted
// and exported date.
const DateLayout = "2006-01-02"

type (
	Date struct {
		time.Time
		set bool // false only for the zero value, so 0001-01-01 stays a valid date
	}

	Money struct {
		Cents int64
	}

	Expense struct {
		Amount      Money  `json:"amount"`
		Description string `json:"description"`
		Date        Date   `json:"date"`
		Category    string `json:"category"`
	}
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrEmptyCategory  = errors.New("empty category")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), set: true}
}

// ParseDate parses a YYYY-MM-DD string. Out-of-range days such as
// 2024-02-30 are rejected rather than normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, s)
	}
	return Date{Time: t, set: true}, nil
}

// Validate only rejects a Date that was never assigned; ParseDate decides
// what counts as a well-formed date.
func (d Date) Validate() error {
	if !d.set {
		return errors.New("date not set")
	}
	return nil
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// DaysUntil returns the number of whole calendar days from d to other.
// It works on Unix seconds because time.Duration overflows past ~292 years.
func (d Date) DaysUntil(other Date) int {
	return int((other.Unix() - d.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(b))
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NormalizeCategory trims and lowercases a category label.
func NormalizeCategory(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// NewExpense builds a validated Expense from raw user input.
func NewExpense(amount, description, date, category string) (Expense, error) {
	m, err := ParseMoney(amount)
	if err != nil {
		return Expense{}, err
	}
	d, err := ParseDate(date)
	if err != nil {
		return Expense{}, err
	}
	e := Expense{
		Amount:      m,
		Description: strings.TrimSpace(description),
		Date:        d,
		Category:    NormalizeCategory(category),
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// UnmarshalJSON requires amount, date and category to be present and
// non-null; a missing description decodes as empty.
func (e *Expense) UnmarshalJSON(b []byte) error {
	var raw struct {
		Amount      *Money  `json:"amount"`
		Description *string `json:"description"`
		Date        *Date   `json:"date"`
		Category    *string `json:"category"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.Amount == nil:
		return fmt.Errorf("%w: missing amount", ErrInvalidAmount)
	case raw.Date == nil:
		return fmt.Errorf("%w: missing date", ErrInvalidDate)
	case raw.Category == nil:
		return fmt.Errorf("%w: missing category", ErrEmptyCategory)
	}
	*e = Expense{Amount: *raw.Amount, Date: *raw.Date, Category: *raw.Category}
	if raw.Description != nil {
		e.Description = *raw.Description
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if e.Category == "" {
		return ErrEmptyCategory
	}
	return nil
}
