// Package model defines the domain types shared between handlers and
// repositories. Only the names table is persisted; query specs are
// ephemeral per-request values produced by validation.
package model

import (
	"encoding/json"
	"time"
)

// Gender values accepted by the store. Neutral names are eligible for
// every gender-specific query in addition to their own.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderNeutral = "neutral"
	GenderAny     = "any" // query-only pseudo value, never stored
)

// ValidGender reports whether g is one of the three storable genders.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderNeutral
}

// NameRecord mirrors a row of the 'names' table.
//
// Fields:
//
//	ID        – primary key, auto-incremented by the store.
//	Name      – display name, non-empty.
//	Gender    – one of male/female/neutral, constrained in the schema.
//	Origin    – optional provenance tag (e.g. "elvish"); nil maps to NULL.
//	CreatedAt – row creation timestamp.
type NameRecord struct {
	ID        uint64    // names.id
	Name      string    // names.name
	Gender    string    // names.gender
	Origin    *string   // names.origin
	CreatedAt time.Time // names.created_at
}

// NameQuerySpec is the normalized form of a random-name request. It is
// built by the request validator; the repository trusts its contents
// and binds every value as a query parameter.
type NameQuerySpec struct {
	Gender string // male, female, neutral or any
	Count  int    // 1..50 inclusive
	Origin string // optional equality filter; empty means no filter
}

// RandomNames is the payload produced for a random-name query. Count is
// the number of names actually returned, which may be lower than the
// requested count when few rows match.
type RandomNames struct {
	Names  []string `json:"names"`
	Gender string   `json:"gender"`
	Count  int      `json:"count"`
	Origin string   `json:"origin,omitempty"`
}

// GenderCount is one aggregate row of the stats query. It serializes as
// a two-element array, e.g. ["female", 40], matching the public API shape.
type GenderCount struct {
	Gender string
	Count  int
}

// MarshalJSON encodes the pair as ["gender", count].
func (g GenderCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{g.Gender, g.Count})
}
