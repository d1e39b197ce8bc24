package hookbook

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PieceType classifies a piece by what it is, which drives the size
// factor applied during pricing.
type PieceType string

// Piece types.
const (
	PieceShawl     PieceType = "shawl"
	PieceScarf     PieceType = "scarf"
	PieceBedThrow  PieceType = "bed_throw"
	PieceBlanket   PieceType = "blanket"
	PieceCowl      PieceType = "cowl"
	PiecePoncho    PieceType = "poncho"
	PieceCardigan  PieceType = "cardigan"
	PieceHat       PieceType = "hat"
	PieceBag       PieceType = "bag"
	PieceHomeDecor PieceType = "home_decor"
	PieceOther     PieceType = "other"
)

// WorkStatus tracks making progress. The progression is forward-only:
// in_progress, then finished (off the hook), then ready (blocked, ends
// woven in, photographed).
type WorkStatus string

// Work statuses, in order.
const (
	WorkInProgress WorkStatus = "in_progress"
	WorkFinished   WorkStatus = "finished"
	WorkReady      WorkStatus = "ready"
)

// workStatusRank orders statuses for the forward-only check.
var workStatusRank = map[WorkStatus]int{
	WorkInProgress: 0,
	WorkFinished:   1,
	WorkReady:      2,
}

// Destination is what the piece is for. Three tracks, each with a
// pre-terminal and a terminal state: for_sale leads to sold, for_gift to
// gifted, for_self to in_use. A piece may move freely between the three
// pre-terminal states; terminal states are final.
type Destination string

// Destinations.
const (
	DestForSale Destination = "for_sale"
	DestSold    Destination = "sold"
	DestForGift Destination = "for_gift"
	DestGifted  Destination = "gifted"
	DestForSelf Destination = "for_self"
	DestInUse   Destination = "in_use"
)

// destinationTerminal maps each terminal destination to the pre-terminal
// state it requires.
var destinationTerminal = map[Destination]Destination{
	DestSold:   DestForSale,
	DestGifted: DestForGift,
	DestInUse:  DestForSelf,
}

// Dimensions are the finished measurements of a piece in centimeters.
// Depth is only meaningful for three-dimensional pieces (bags, baskets).
type Dimensions struct {
	WidthCM  float64
	LengthCM float64
	DepthCM  float64
}

// WorkSession is one sitting of work on a piece.
type WorkSession struct {
	Date  time.Time
	Hours float64
	Notes string
}

// YarnUsage links a piece to a yarn it consumed.
type YarnUsage struct {
	YarnID    string
	BallsUsed float64
}

// Piece is a handcrafted item, finished or in progress.
type Piece struct {
	ID   string
	Name string
	Type PieceType

	Dimensions *Dimensions
	HookSizeMM float64

	WorkStatus         WorkStatus
	DateStarted        time.Time
	DateFinished       time.Time
	WorkSessions       []WorkSession
	WorkHoursEstimated float64

	YarnsUsed    []YarnUsage
	StitchesUsed []string
	StyleID      string

	Destination   Destination
	Price         decimal.NullDecimal
	SoldPrice     decimal.NullDecimal
	SoldDate      time.Time
	GiftRecipient string
	SalePlatform  string

	Notes string

	Archival
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoursLogged is the derived total of session hours. It is never stored;
// the session log is the source of truth.
func (p Piece) HoursLogged() float64 {
	var total float64
	for _, s := range p.WorkSessions {
		total += s.Hours
	}

	return total
}

// Completed reports whether the making work is done (finished or ready).
func (p Piece) Completed() bool {
	return p.WorkStatus == WorkFinished || p.WorkStatus == WorkReady
}

// AddSession appends a work session to the piece's log. The log is
// append-only; sessions are validated the same way the time engine
// validates them so a bad session never enters the log in the first
// place.
func (p *Piece) AddSession(s WorkSession, now time.Time) error {
	err := validateSession(s, p.DateStarted)
	if err != nil {
		return fmt.Errorf("piece %s: %w", p.ID, err)
	}

	p.WorkSessions = append(p.WorkSessions, s)
	p.UpdatedAt = now

	return nil
}

// AddYarn records that the piece consumed balls of a yarn.
func (p *Piece) AddYarn(u YarnUsage, now time.Time) error {
	if u.BallsUsed <= 0 {
		return fmt.Errorf("piece %s: yarn %s: balls used must be positive: %w", p.ID, u.YarnID, ErrInvalidInput)
	}

	p.YarnsUsed = append(p.YarnsUsed, u)
	p.UpdatedAt = now

	return nil
}

// AdvanceWorkStatus moves the piece forward in the making lifecycle.
// Skipping a stage is allowed (in_progress straight to ready); moving
// backwards or re-asserting the current status is not.
func (p *Piece) AdvanceWorkStatus(to WorkStatus, now time.Time) error {
	toRank, ok := workStatusRank[to]
	if !ok {
		return fmt.Errorf("piece %s: work status %q: %w", p.ID, to, ErrInvalidTransition)
	}

	if toRank <= workStatusRank[p.WorkStatus] {
		return fmt.Errorf("piece %s: work status %s -> %s: %w", p.ID, p.WorkStatus, to, ErrInvalidTransition)
	}

	p.WorkStatus = to
	p.UpdatedAt = now

	return nil
}

// SetDestination changes what the piece is for. Terminal destinations
// (sold, gifted, in_use) can only be reached from their own track's
// pre-terminal state, and once terminal the destination is final.
func (p *Piece) SetDestination(to Destination, now time.Time) error {
	if _, terminal := destinationTerminal[p.Destination]; terminal {
		return fmt.Errorf("piece %s: destination %s is final: %w", p.ID, p.Destination, ErrInvalidTransition)
	}

	requires, toTerminal := destinationTerminal[to]
	if toTerminal && p.Destination != requires {
		return fmt.Errorf("piece %s: destination %s -> %s: %w", p.ID, p.Destination, to, ErrInvalidTransition)
	}

	if !toTerminal {
		switch to {
		case DestForSale, DestForGift, DestForSelf:
		default:
			return fmt.Errorf("piece %s: destination %q: %w", p.ID, to, ErrInvalidTransition)
		}
	}

	p.Destination = to
	p.UpdatedAt = now

	return nil
}

// MarkSold records a sale: destination becomes sold with the price
// obtained and the sale date. The piece must currently be for_sale.
func (p *Piece) MarkSold(price decimal.Decimal, date, now time.Time) error {
	err := p.SetDestination(DestSold, now)
	if err != nil {
		return err
	}

	p.SoldPrice = decimal.NewNullDecimal(price)
	p.SoldDate = date

	return nil
}

// workHoursActual validates every session and sums their hours. Both
// engines use it: a malformed log must fail pricing and estimation
// alike, never price in silently.
func workHoursActual(piece Piece) (float64, error) {
	var total float64

	for _, s := range piece.WorkSessions {
		err := validateSession(s, piece.DateStarted)
		if err != nil {
			return 0, fmt.Errorf("piece %s: %w", piece.ID, err)
		}

		total += s.Hours
	}

	return total, nil
}

// validateSession checks a single work session. dateStarted may be zero
// when the piece has no recorded start date.
func validateSession(s WorkSession, dateStarted time.Time) error {
	if s.Hours < 0 {
		return fmt.Errorf("session on %s: negative hours %v: %w", s.Date.Format("2006-01-02"), s.Hours, ErrInvalidSession)
	}

	if !dateStarted.IsZero() && !s.Date.IsZero() && s.Date.Before(dateStarted) {
		return fmt.Errorf("session on %s predates start %s: %w",
			s.Date.Format("2006-01-02"), dateStarted.Format("2006-01-02"), ErrInvalidSession)
	}

	return nil
}
