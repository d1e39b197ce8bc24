package hookbook

import "errors"

// Sentinel errors returned by hookbook operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, hookbook.ErrMissingReference) {
//	    // prompt the user to fix the catalog
//	}
var (
	// ErrMissingReference indicates a piece references a yarn, stitch or
	// style id that is not present in the snapshot.
	//
	// The catalog the snapshot was built from is incomplete; nothing is
	// computed.
	ErrMissingReference = errors.New("hookbook: missing reference")

	// ErrInvalidConfig indicates a negative or otherwise out-of-range
	// configuration value.
	//
	// This is a programming error; fix the config before constructing a
	// [Pricer].
	ErrInvalidConfig = errors.New("hookbook: invalid config")

	// ErrInvalidSession indicates a malformed work session: negative
	// hours, or a session dated before the piece was started.
	ErrInvalidSession = errors.New("hookbook: invalid work session")

	// ErrInsufficientData indicates there is no basis for an estimate or
	// comparison: no style history, no style estimate, and no comparable
	// pieces. The caller decides the fallback (for example, prompting the
	// user for a manual estimate).
	ErrInsufficientData = errors.New("hookbook: insufficient data")

	// ErrCapacity indicates the 3-digit ID space for an entity kind is
	// exhausted (999 ids). This is a hard ceiling, never wrapped around.
	ErrCapacity = errors.New("hookbook: id capacity exhausted")

	// ErrAlreadyArchived indicates a second archival of the same record.
	//
	// Archival is deliberately not idempotent so double-archive bugs
	// surface instead of being swallowed.
	ErrAlreadyArchived = errors.New("hookbook: already archived")

	// ErrInvalidRate indicates a non-positive hours-per-week rate.
	ErrInvalidRate = errors.New("hookbook: invalid rate")

	// ErrUnknownKind indicates an entity kind [NextID] does not manage.
	ErrUnknownKind = errors.New("hookbook: unknown entity kind")

	// ErrInvalidTransition indicates a work-status or destination change
	// that the lifecycle rules forbid, such as moving a piece backwards
	// from finished to in_progress or selling a piece that was never
	// listed for sale.
	ErrInvalidTransition = errors.New("hookbook: invalid transition")

	// ErrInvalidInput indicates invalid arguments were provided, such as
	// a yarn usage with zero balls.
	//
	// This is a programming error.
	ErrInvalidInput = errors.New("hookbook: invalid input")
)
