package models

import "fmt"

// ScentCategory classifies a scent for merchandising purposes.
type ScentCategory int

const (
	ScentFavorites ScentCategory = iota
	ScentSeasonal
	ScentLimited
)

// String returns the storefront label for the category.
func (c ScentCategory) String() string {
	switch c {
	case ScentFavorites:
		return "favorites"
	case ScentSeasonal:
		return "seasonal"
	case ScentLimited:
		return "limited"
	default:
		return "unknown"
	}
}

// ParseScentCategory converts a stored category label back to its enum value.
func ParseScentCategory(s string) (ScentCategory, error) {
	switch s {
	case "favorites":
		return ScentFavorites, nil
	case "seasonal":
		return ScentSeasonal, nil
	case "limited":
		return ScentLimited, nil
	default:
		return 0, fmt.Errorf("unknown scent category: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so categories serialize as labels.
func (c ScentCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ScentCategory) UnmarshalText(b []byte) error {
	parsed, err := ParseScentCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scent is one fragrance in the catalog. A scent may be restricted to a
// single product line, in which case it is excluded from every other
// product's variant set.
type Scent struct {
	Key          string        `gorm:"primaryKey" json:"key"`
	Name         string        `json:"name"`
	Category     ScentCategory `gorm:"serializer:json" json:"category"`
	RestrictedTo string        `json:"restricted_to,omitempty"` // product slug, empty = global
}
