package hookbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// Shared test fixtures.

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}

	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// scarfSnapshot is the worked example from the pricing docs: a scarf
// with two sessions (3h + 5h), one ball of a 5.00 yarn, and one lace
// stitch.
func scarfSnapshot() (Piece, Snapshot) {
	piece := Piece{
		ID:          "PIECE-001",
		Name:        "Seafoam scarf",
		Type:        PieceScarf,
		WorkStatus:  WorkInProgress,
		Destination: DestForSale,
		DateStarted: day(2025, 1, 6),
		WorkSessions: []WorkSession{
			{Date: day(2025, 1, 6), Hours: 3},
			{Date: day(2025, 1, 8), Hours: 5},
		},
		YarnsUsed:    []YarnUsage{{YarnID: "YARN-001", BallsUsed: 1}},
		StitchesUsed: []string{"STITCH-001"},
	}

	snap := Snapshot{
		Pieces: []Piece{piece},
		Yarns: []Yarn{{
			ID:        "YARN-001",
			Name:      "Mercerized cotton",
			Material:  MaterialCotton,
			PricePaid: decimal.RequireFromString("5.00"),
		}},
		Stitches: []Stitch{{
			ID:       "STITCH-001",
			Name:     "fan stitch",
			Category: StitchLace,
		}},
	}

	return piece, snap
}
