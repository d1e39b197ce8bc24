package hookbook

import (
	"fmt"
	"slices"
	"time"
)

// Archival is the soft-delete state shared by pieces, yarns and stitches.
//
// Records are never physically removed from a catalog; they are archived.
// An archived record keeps its id forever and may still be referenced by
// pieces that used it. The three fields are set together or not at all.
type Archival struct {
	Archived       bool
	ArchivedDate   time.Time
	ArchivedReason string
}

// IsArchived reports whether the record has been archived.
func (a Archival) IsArchived() bool {
	return a.Archived
}

// archive sets the archival triple. A second archival is rejected rather
// than treated as a no-op.
func (a *Archival) archive(reason string, date time.Time) error {
	if a.Archived {
		return ErrAlreadyArchived
	}

	a.Archived = true
	a.ArchivedDate = date
	a.ArchivedReason = reason

	return nil
}

// Archivable is satisfied by any record carrying [Archival] state.
type Archivable interface {
	IsArchived() bool
}

// Active returns the records that have not been archived. This is the
// default read view for a catalog.
func Active[R Archivable](records []R) []R {
	out := make([]R, 0, len(records))

	for _, r := range records {
		if !r.IsArchived() {
			out = append(out, r)
		}
	}

	return out
}

// AllIncludingArchived returns every record, archived or not.
//
// Exposed alongside [Active] so callers always opt into a view explicitly
// instead of relying on an implicit filter.
func AllIncludingArchived[R Archivable](records []R) []R {
	return slices.Clone(records)
}

// Archive marks the piece archived. now is used for the UpdatedAt bump.
func (p *Piece) Archive(reason string, date, now time.Time) error {
	err := p.Archival.archive(reason, date)
	if err != nil {
		return fmt.Errorf("piece %s: %w", p.ID, err)
	}

	p.UpdatedAt = now

	return nil
}

// Archive marks the yarn archived.
func (y *Yarn) Archive(reason string, date, now time.Time) error {
	err := y.Archival.archive(reason, date)
	if err != nil {
		return fmt.Errorf("yarn %s: %w", y.ID, err)
	}

	y.UpdatedAt = now

	return nil
}

// Archive marks the stitch archived.
func (s *Stitch) Archive(reason string, date, now time.Time) error {
	err := s.Archival.archive(reason, date)
	if err != nil {
		return fmt.Errorf("stitch %s: %w", s.ID, err)
	}

	s.UpdatedAt = now

	return nil
}
