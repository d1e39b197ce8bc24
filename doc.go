// Package hookbook derives prices and time estimates for a catalog of
// handcrafted pieces, the yarns they consume, and the stitches they use.
//
// hookbook is a pure computation layer. Callers load Piece, Yarn, Stitch
// and Style records from wherever they live, hand them to the engine as a
// read-only [Snapshot] together with a [Config], and get back immutable
// result values. The package never touches storage, never renders output,
// and never reads the wall clock (the time engine takes an injected now
// function).
//
// # Basic Usage
//
//	cfg := hookbook.DefaultConfig()
//
//	pricer, err := hookbook.NewPricer(cfg)
//	if err != nil {
//	    // handle [ErrInvalidConfig]
//	}
//
//	breakdown, err := pricer.Breakdown(piece, snap)
//	// breakdown.RoundedPrice is the suggested sale price
//
//	est := hookbook.NewEstimator(nil) // nil means time.Now
//	te, err := est.PredictCompletionDate(piece, snap, 5)
//
// # Concurrency
//
// Every operation is a deterministic function of its inputs. There is no
// internal state, locking, or I/O; concurrent calls are safe as long as
// each caller owns its snapshot and does not mutate it mid-call.
//
// # Error Handling
//
// Failures are sentinel errors checked with [errors.Is]. They are local
// and final: the engine never retries and never returns a partially
// computed breakdown or estimate.
package hookbook
