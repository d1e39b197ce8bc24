package hookbook

import "time"

// Style is a reusable design template grouping pieces made to the same
// pattern. Its averages are derived from current piece data at query
// time, never maintained as stored counters.
type Style struct {
	ID   string
	Name string

	PieceType       PieceType
	PrimaryStitchID string

	// EstimatedHours is the maker's own guess for a piece of this style,
	// used as the estimation fallback before any history exists.
	EstimatedHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PiecesCompleted counts the non-archived pieces of this style whose
// work status is ready.
func (s Style) PiecesCompleted(pieces []Piece) int {
	var n int

	for _, p := range pieces {
		if p.StyleID == s.ID && !p.IsArchived() && p.WorkStatus == WorkReady {
			n++
		}
	}

	return n
}
