package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/homeoclinic/clinic-api/internal/platform/codec"
)

// Kind classifies a remedy's preparation.
type Kind string

const (
	KindDilution       Kind = "Dilution"
	KindMotherTincture Kind = "Mother Tincture"
	KindBioChemic      Kind = "Bio-Chemic"
	KindOintment       Kind = "Ointment"
	KindOther          Kind = "Other"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindDilution, KindMotherTincture, KindBioChemic, KindOintment, KindOther:
		return true
	}
	return false
}

// Item is one stocked remedy.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Potency   string    `json:"potency"` // e.g. "30", "200", "1M", "Q"
	Kind      Kind      `json:"type"`
	Quantity  codec.Int `json:"quantity"`
	MinLevel  codec.Int `json:"minLevel"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i Item) LowStock() bool {
	return i.Quantity <= i.MinLevel
}

// Row is the storage shape of an inventory item.
type Row struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Potency   string    `json:"potency"`
	Kind      string    `json:"type"`
	Quantity  codec.Int `json:"quantity"`
	MinLevel  codec.Int `json:"min_level"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDomain maps a row to the domain shape.
func (r Row) ToDomain() Item {
	return Item{
		ID:        r.ID,
		Name:      r.Name,
		Potency:   r.Potency,
		Kind:      Kind(r.Kind),
		Quantity:  r.Quantity,
		MinLevel:  r.MinLevel,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToRow maps an item to its storage shape.
func (i Item) ToRow() Row {
	return Row{
		ID:        i.ID,
		Name:      i.Name,
		Potency:   i.Potency,
		Kind:      string(i.Kind),
		Quantity:  i.Quantity,
		MinLevel:  i.MinLevel,
		UpdatedAt: i.UpdatedAt,
	}
}

// CreateItem is the payload for stocking a new remedy.
type CreateItem struct {
	Name     string    `json:"name"`
	Potency  string    `json:"potency"`
	Kind     Kind      `json:"type"`
	Quantity codec.Int `json:"quantity"`
	MinLevel codec.Int `json:"minLevel"`
}

// Validate checks mandatory fields and value ranges.
func (c CreateItem) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}
	if c.Quantity < 0 || c.MinLevel < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Patch carries the fields of a partial update. Nil means untouched.
type Patch struct {
	Name     *string    `json:"name"`
	Potency  *string    `json:"potency"`
	Kind     *Kind      `json:"type"`
	Quantity *codec.Int `json:"quantity"`
	MinLevel *codec.Int `json:"minLevel"`
}

// Validate checks the fields the patch actually sets.
func (p Patch) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	if p.Kind != nil && !p.Kind.Valid() {
		return ErrInvalidKind
	}
	if (p.Quantity != nil && *p.Quantity < 0) || (p.MinLevel != nil && *p.MinLevel < 0) {
		return ErrNegativeQuantity
	}
	return nil
}

func (p Patch) apply(i *Item) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Potency != nil {
		i.Potency = *p.Potency
	}
	if p.Kind != nil {
		i.Kind = *p.Kind
	}
	if p.Quantity != nil {
		i.Quantity = *p.Quantity
	}
	if p.MinLevel != nil {
		i.MinLevel = *p.MinLevel
	}
}
