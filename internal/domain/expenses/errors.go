package expenses

import "errors"

var (
	// ErrNotFound signals an unknown expense id.
	ErrNotFound = errors.New("expense not found")
	// ErrTitleRequired signals an expense without a title.
	ErrTitleRequired = errors.New("title is required")
	// ErrDateRequired signals an expense without a date.
	ErrDateRequired = errors.New("date is required")
	// ErrNegativeAmount signals a negative amount.
	ErrNegativeAmount = errors.New("amount must not be negative")
)
