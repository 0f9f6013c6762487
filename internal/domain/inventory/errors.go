package inventory

import "errors"

var (
	// ErrNotFound signals an unknown item id.
	ErrNotFound = errors.New("inventory item not found")
	// ErrNameRequired signals an item without a name.
	ErrNameRequired = errors.New("name is required")
	// ErrInvalidKind signals a value outside the preparation enum.
	ErrInvalidKind = errors.New("invalid item type")
	// ErrNegativeQuantity signals a negative quantity or minimum level.
	ErrNegativeQuantity = errors.New("quantity and minLevel must not be negative")
)
