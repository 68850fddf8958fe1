package entity

import (
	"sort"
	"strings"
)

// Amenities is a set of amenity names. Uniqueness is enforced at the
// boundary via Normalize, not assumed from callers.
type Amenities []string

// NormalizeAmenities trims, drops empties and duplicates, and sorts so the
// stored value is canonical.
func NormalizeAmenities(raw []string) Amenities {
	seen := make(map[string]struct{}, len(raw))
	out := make(Amenities, 0, len(raw))
	for _, a := range raw {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

func (a Amenities) Has(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range a {
		if strings.ToLower(v) == name {
			return true
		}
	}
	return false
}

func (a Amenities) Add(name string) Amenities {
	return NormalizeAmenities(append(a, name))
}

func (a Amenities) Remove(name string) Amenities {
	name = strings.ToLower(strings.TrimSpace(name))
	out := make(Amenities, 0, len(a))
	for _, v := range a {
		if strings.ToLower(v) != name {
			out = append(out, v)
		}
	}
	return out
}

type RoomType struct {
	Base
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	NightlyRate float64   `db:"nightly_rate"`
	MaxGuests   int       `db:"max_guests"`
	Amenities   Amenities `db:"amenities"`
	IsBookable  bool      `db:"is_bookable"`
	ImageURL    *string   `db:"image_url"` // blob store reference
}
