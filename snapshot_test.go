package hookbook

import "testing"

func TestSnapshotLookups(t *testing.T) {
	_, snap := scarfSnapshot()
	snap.Styles = []Style{{ID: "STYLE-001", Name: "Fan scarf"}}

	if _, ok := snap.Piece("PIECE-001"); !ok {
		t.Error("Piece(PIECE-001) not found")
	}

	if _, ok := snap.Yarn("YARN-001"); !ok {
		t.Error("Yarn(YARN-001) not found")
	}

	if _, ok := snap.Stitch("STITCH-001"); !ok {
		t.Error("Stitch(STITCH-001) not found")
	}

	if _, ok := snap.Style("STYLE-001"); !ok {
		t.Error("Style(STYLE-001) not found")
	}

	if _, ok := snap.Piece("PIECE-404"); ok {
		t.Error("Piece(PIECE-404) found, want miss")
	}

	if _, ok := snap.Yarn(""); ok {
		t.Error("Yarn(\"\") found, want miss")
	}
}

func TestSnapshotActiveViews(t *testing.T) {
	_, snap := scarfSnapshot()

	archived := Stitch{ID: "STITCH-002", Name: "magic ring",
		Archival: Archival{Archived: true, ArchivedDate: testDay, ArchivedReason: "merged"}}
	snap.Stitches = append(snap.Stitches, archived)

	if got := len(snap.ActiveStitches()); got != 1 {
		t.Errorf("ActiveStitches() = %d, want 1", got)
	}

	if got := len(AllIncludingArchived(snap.Stitches)); got != 2 {
		t.Errorf("AllIncludingArchived() = %d, want 2", got)
	}

	if got := len(snap.ActivePieces()); got != 1 {
		t.Errorf("ActivePieces() = %d, want 1", got)
	}
}
