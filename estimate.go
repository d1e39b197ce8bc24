package hookbook

import (
	"fmt"
	"math"
	"time"
)

// EstimateBasis names the data an estimate was derived from.
type EstimateBasis string

// Estimate bases, in preference order.
const (
	// BasisStyleAverage: the average actual hours of completed pieces of
	// the same style.
	BasisStyleAverage EstimateBasis = "style_avg"

	// BasisStyleEstimate: the maker's own estimate recorded on the style.
	BasisStyleEstimate EstimateBasis = "style_estimate"

	// BasisComparablePieces: the mean actual hours of completed pieces of
	// the same type.
	BasisComparablePieces EstimateBasis = "comparable_pieces"
)

// TimeEstimate is the result of the time engine. PredictedDate is only
// set by [Estimator.PredictCompletionDate].
type TimeEstimate struct {
	HoursLogged    float64
	RemainingHours float64
	PredictedDate  time.Time
	Basis          EstimateBasis
}

// Estimator is the time engine. It owns nothing but a clock.
type Estimator struct {
	now func() time.Time
}

// NewEstimator returns an estimator using the given clock, or the wall
// clock when now is nil. Tests inject a fixed clock.
func NewEstimator(now func() time.Time) *Estimator {
	if now == nil {
		now = time.Now
	}

	return &Estimator{now: now}
}

// WorkHoursActual sums the piece's session hours after validating every
// session: negative hours or a session dated before the piece was
// started fail with [ErrInvalidSession]. A piece with no sessions has
// zero actual hours; that is not an error.
func (e *Estimator) WorkHoursActual(piece Piece) (float64, error) {
	return workHoursActual(piece)
}

// EstimateRemainingHours estimates how much work is left on a piece.
//
// Bases are tried in order: the style's derived average hours, then the
// style's recorded estimate, then the mean hours of completed pieces of
// the same type. Remaining hours never go below zero. With no basis at
// all the estimate fails with [ErrInsufficientData] and the caller
// decides what to do (typically ask the maker).
func (e *Estimator) EstimateRemainingHours(piece Piece, snap Snapshot) (TimeEstimate, error) {
	actual, err := e.WorkHoursActual(piece)
	if err != nil {
		return TimeEstimate{}, err
	}

	if piece.StyleID != "" {
		style, ok := snap.Style(piece.StyleID)
		if !ok {
			return TimeEstimate{}, fmt.Errorf("piece %s: style %s: %w", piece.ID, piece.StyleID, ErrMissingReference)
		}

		avg, ok := StyleAverageHours(style, snap.Pieces)
		if ok {
			return remainingEstimate(actual, avg, BasisStyleAverage), nil
		}

		if style.EstimatedHours > 0 {
			return remainingEstimate(actual, style.EstimatedHours, BasisStyleEstimate), nil
		}
	}

	avg, ok := averageHoursByType(piece, snap.Pieces)
	if ok {
		return remainingEstimate(actual, avg, BasisComparablePieces), nil
	}

	return TimeEstimate{}, fmt.Errorf("piece %s: no estimation basis: %w", piece.ID, ErrInsufficientData)
}

// PredictCompletionDate extends [Estimator.EstimateRemainingHours] with
// a completion date: today per the injected clock, plus one week per
// started hours-per-week chunk of remaining work.
func (e *Estimator) PredictCompletionDate(piece Piece, snap Snapshot, hoursPerWeek float64) (TimeEstimate, error) {
	if hoursPerWeek <= 0 {
		return TimeEstimate{}, fmt.Errorf("hours per week %v: %w", hoursPerWeek, ErrInvalidRate)
	}

	est, err := e.EstimateRemainingHours(piece, snap)
	if err != nil {
		return TimeEstimate{}, err
	}

	weeks := int(math.Ceil(est.RemainingHours / hoursPerWeek))

	year, month, day := e.now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	est.PredictedDate = today.AddDate(0, 0, 7*weeks)

	return est, nil
}

// StyleAverageHours is the mean logged hours over non-archived, ready
// pieces of the style. The second return is false when no piece
// qualifies - "no data" is distinct from "zero hours" and callers must
// not collapse the two.
func StyleAverageHours(style Style, pieces []Piece) (float64, bool) {
	var (
		total float64
		count int
	)

	for _, p := range pieces {
		if p.StyleID != style.ID || p.IsArchived() || p.WorkStatus != WorkReady {
			continue
		}

		total += p.HoursLogged()
		count++
	}

	if count == 0 {
		return 0, false
	}

	return total / float64(count), true
}

// averageHoursByType is the mean logged hours of completed pieces of the
// same type, the last-resort estimation basis. Archived pieces count
// (their history is still real work); pieces with nothing logged do not.
func averageHoursByType(piece Piece, pieces []Piece) (float64, bool) {
	var (
		total float64
		count int
	)

	for _, p := range pieces {
		if p.ID == piece.ID || p.Type != piece.Type || !p.Completed() {
			continue
		}

		hours := p.HoursLogged()
		if hours <= 0 {
			continue
		}

		total += hours
		count++
	}

	if count == 0 {
		return 0, false
	}

	return total / float64(count), true
}

func remainingEstimate(actual, estimatedTotal float64, basis EstimateBasis) TimeEstimate {
	return TimeEstimate{
		HoursLogged:    actual,
		RemainingHours: math.Max(0, estimatedTotal-actual),
		Basis:          basis,
	}
}
