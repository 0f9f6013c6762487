package expenses

import (
	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
)

// Expense is one outgoing payment. Expenses are append/delete only:
// a wrong entry is removed and re-entered, never edited.
type Expense struct {
	ID       uuid.UUID    `json:"id"`
	Title    string       `json:"title"`
	Amount   codec.Number `json:"amount"`
	Category string       `json:"category"`
	Date     string       `json:"date"` // plain calendar date, YYYY-MM-DD
	Notes    string       `json:"notes,omitempty"`
}

// Row is the storage shape of an expense.
type Row struct {
	ID       uuid.UUID    `json:"id"`
	Title    string       `json:"title"`
	Amount   codec.Number `json:"amount"`
	Category string       `json:"category"`
	Date     string       `json:"date"`
	Notes    *string      `json:"notes"`
}

// ToDomain maps a row to the domain shape.
func (r Row) ToDomain() Expense {
	e := Expense{
		ID:       r.ID,
		Title:    r.Title,
		Amount:   r.Amount,
		Category: r.Category,
		Date:     r.Date,
	}
	if r.Notes != nil {
		e.Notes = *r.Notes
	}
	return e
}

// ToRow maps an expense to its storage shape.
func (e Expense) ToRow() Row {
	r := Row{
		ID:       e.ID,
		Title:    e.Title,
		Amount:   e.Amount,
		Category: e.Category,
		Date:     e.Date,
	}
	if e.Notes != "" {
		r.Notes = &e.Notes
	}
	return r
}

// CreateExpense is the payload for recording a payment.
type CreateExpense struct {
	Title    string       `json:"title"`
	Amount   codec.Number `json:"amount"`
	Category string       `json:"category"`
	Date     string       `json:"date"`
	Notes    string       `json:"notes"`
}

// Validate checks mandatory fields and value ranges.
func (c CreateExpense) Validate() error {
	if c.Title == "" {
		return ErrTitleRequired
	}
	if c.Date == "" {
		return ErrDateRequired
	}
	if c.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
