package hookbook

// Snapshot is the read-only record set the engines compute over. The
// caller builds it from its own storage and owns it; the engines only
// look ids up and filter, they never mutate or persist it.
//
// Pieces may reference archived yarns and stitches - archival preserves
// history, so those references still resolve.
type Snapshot struct {
	Pieces   []Piece
	Yarns    []Yarn
	Stitches []Stitch
	Styles   []Style
}

// Piece looks a piece up by id.
func (s Snapshot) Piece(id string) (Piece, bool) {
	for _, p := range s.Pieces {
		if p.ID == id {
			return p, true
		}
	}

	return Piece{}, false
}

// Yarn looks a yarn up by id, archived or not.
func (s Snapshot) Yarn(id string) (Yarn, bool) {
	for _, y := range s.Yarns {
		if y.ID == id {
			return y, true
		}
	}

	return Yarn{}, false
}

// Stitch looks a stitch up by id, archived or not.
func (s Snapshot) Stitch(id string) (Stitch, bool) {
	for _, st := range s.Stitches {
		if st.ID == id {
			return st, true
		}
	}

	return Stitch{}, false
}

// Style looks a style up by id.
func (s Snapshot) Style(id string) (Style, bool) {
	for _, st := range s.Styles {
		if st.ID == id {
			return st, true
		}
	}

	return Style{}, false
}

// ActivePieces returns the non-archived pieces (the default read view).
func (s Snapshot) ActivePieces() []Piece {
	return Active(s.Pieces)
}

// ActiveYarns returns the non-archived yarns.
func (s Snapshot) ActiveYarns() []Yarn {
	return Active(s.Yarns)
}

// ActiveStitches returns the non-archived stitches.
func (s Snapshot) ActiveStitches() []Stitch {
	return Active(s.Stitches)
}
