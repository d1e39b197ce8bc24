package hookbook

import (
	"strings"
	"time"
)

// StitchCategory classifies a technique and drives its complexity factor
// during pricing.
type StitchCategory string

// Stitch categories.
const (
	StitchBasic     StitchCategory = "basic"
	StitchTextured  StitchCategory = "textured"
	StitchLace      StitchCategory = "lace"
	StitchColorwork StitchCategory = "colorwork"
	StitchSpecialty StitchCategory = "specialty"
)

// Difficulty is the skill level a stitch demands.
type Difficulty string

// Difficulties.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Stitch is a technique record. Name holds the normalized canonical name
// from the naming authority the catalog follows; NameAliases holds the
// variant names the same stitch goes by elsewhere.
type Stitch struct {
	ID           string
	Name         string
	NameAliases  []string
	Abbreviation string

	Category   StitchCategory
	Difficulty Difficulty

	Notes string

	Archival
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeStitchName reduces a stitch name to its comparable form:
// lowercase, trimmed, inner whitespace collapsed to single spaces.
func NormalizeStitchName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// MatchesName reports whether name refers to this stitch, checking the
// canonical name and every alias after normalization.
func (s Stitch) MatchesName(name string) bool {
	want := NormalizeStitchName(name)
	if want == "" {
		return false
	}

	if NormalizeStitchName(s.Name) == want {
		return true
	}

	for _, alias := range s.NameAliases {
		if NormalizeStitchName(alias) == want {
			return true
		}
	}

	return false
}
