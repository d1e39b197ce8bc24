package hookbook

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// PriceBreakdown is the full result of a price calculation, every
// intermediate value included so callers can show their work.
type PriceBreakdown struct {
	MaterialCost decimal.Decimal
	LaborCost    decimal.Decimal
	Subtotal     decimal.Decimal

	ComplexityFactor     decimal.Decimal
	SizeFactor           decimal.Decimal
	ComplexityAdjustment decimal.Decimal
	AdjustedSubtotal     decimal.Decimal

	Profit         decimal.Decimal
	SuggestedPrice decimal.Decimal
	RoundedPrice   decimal.Decimal
}

// Recommendation is the verdict of a market comparison.
type Recommendation string

// Recommendations.
const (
	RecommendRaise    Recommendation = "raise"
	RecommendLower    Recommendation = "lower"
	RecommendOnTarget Recommendation = "on_target"
)

// MarketComparison relates a suggested price to actual sales of
// comparable pieces.
type MarketComparison struct {
	SuggestedPrice   decimal.Decimal
	AverageSoldPrice decimal.Decimal

	// Difference is SuggestedPrice minus AverageSoldPrice; positive
	// means the suggestion is above market.
	Difference decimal.Decimal

	Comparables    int
	Recommendation Recommendation
}

// Pricer computes suggested prices from a validated [Config].
type Pricer struct {
	cfg Config
}

// NewPricer validates cfg and returns a pricer over it. The factor
// tables are copied so later mutation of the caller's maps cannot
// bypass validation.
func NewPricer(cfg Config) (*Pricer, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	cfg.StitchComplexity = maps.Clone(cfg.StitchComplexity)
	cfg.SizeFactor = maps.Clone(cfg.SizeFactor)

	return &Pricer{cfg: cfg}, nil
}

// Breakdown prices a piece against the snapshot:
//
//	material   = sum of price paid x balls used over yarns
//	labor      = logged hours x hourly rate
//	subtotal   = material + labor
//	adjustment = subtotal x (complexity x size - 1)
//	profit     = (subtotal + adjustment) x profit margin
//	suggested  = subtotal + adjustment + profit
//	rounded    = suggested, half up to the nearest RoundTo multiple
//
// Every yarn and stitch the piece references must resolve in the
// snapshot, archived or not; a dangling id fails with
// [ErrMissingReference]. Logged hours are the validated session sum: a
// malformed session fails with [ErrInvalidSession] rather than pricing
// in. A piece with no sessions prices at zero labor.
func (pr *Pricer) Breakdown(piece Piece, snap Snapshot) (PriceBreakdown, error) {
	hours, err := workHoursActual(piece)
	if err != nil {
		return PriceBreakdown{}, err
	}

	material := decimal.Zero

	for _, usage := range piece.YarnsUsed {
		yarn, ok := snap.Yarn(usage.YarnID)
		if !ok {
			return PriceBreakdown{}, fmt.Errorf("piece %s: yarn %s: %w", piece.ID, usage.YarnID, ErrMissingReference)
		}

		material = material.Add(yarn.PricePaid.Mul(decimal.NewFromFloat(usage.BallsUsed)))
	}

	labor := decimal.NewFromFloat(hours).Mul(pr.cfg.HourlyRate)
	subtotal := material.Add(labor)

	complexity, err := pr.complexityFactor(piece, snap)
	if err != nil {
		return PriceBreakdown{}, err
	}

	size := pr.sizeFactor(piece.Type)

	one := decimal.NewFromInt(1)
	adjustment := subtotal.Mul(complexity.Mul(size).Sub(one))
	adjusted := subtotal.Add(adjustment)

	profit := adjusted.Mul(pr.cfg.ProfitMargin)
	suggested := adjusted.Add(profit)

	return PriceBreakdown{
		MaterialCost:         material,
		LaborCost:            labor,
		Subtotal:             subtotal,
		ComplexityFactor:     complexity,
		SizeFactor:           size,
		ComplexityAdjustment: adjustment,
		AdjustedSubtotal:     adjusted,
		Profit:               profit,
		SuggestedPrice:       suggested,
		RoundedPrice:         roundToMultiple(suggested, pr.cfg.RoundTo),
	}, nil
}

// SuggestPriceRange returns the min and max suggested price among
// comparable pieces: non-archived pieces sharing the piece's style, or
// its type when it has no style. With no comparables both bounds are
// the piece's own rounded price.
func (pr *Pricer) SuggestPriceRange(piece Piece, snap Snapshot) (decimal.Decimal, decimal.Decimal, error) {
	var low, high decimal.Decimal

	found := false

	for _, other := range snap.ActivePieces() {
		if !comparable(piece, other) {
			continue
		}

		b, err := pr.Breakdown(other, snap)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}

		if !found || b.RoundedPrice.LessThan(low) {
			low = b.RoundedPrice
		}

		if !found || b.RoundedPrice.GreaterThan(high) {
			high = b.RoundedPrice
		}

		found = true
	}

	if !found {
		b, err := pr.Breakdown(piece, snap)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}

		return b.RoundedPrice, b.RoundedPrice, nil
	}

	return low, high, nil
}

// CompareToMarket relates the piece's rounded price to the average
// realized price of comparable sold pieces. Archived pieces count - a
// sale is history worth keeping. Fails with [ErrInsufficientData] when
// nothing comparable has sold.
func (pr *Pricer) CompareToMarket(piece Piece, snap Snapshot) (MarketComparison, error) {
	b, err := pr.Breakdown(piece, snap)
	if err != nil {
		return MarketComparison{}, err
	}

	total := decimal.Zero

	var count int

	for _, other := range AllIncludingArchived(snap.Pieces) {
		if !comparable(piece, other) {
			continue
		}

		if other.Destination != DestSold || !other.SoldPrice.Valid {
			continue
		}

		total = total.Add(other.SoldPrice.Decimal)
		count++
	}

	if count == 0 {
		return MarketComparison{}, fmt.Errorf("piece %s: no sold comparables: %w", piece.ID, ErrInsufficientData)
	}

	avg := total.Div(decimal.NewFromInt(int64(count)))
	diff := b.RoundedPrice.Sub(avg)
	band := avg.Mul(pr.cfg.MarketTolerance)

	rec := RecommendOnTarget

	switch {
	case diff.GreaterThan(band):
		rec = RecommendLower
	case diff.LessThan(band.Neg()):
		rec = RecommendRaise
	}

	return MarketComparison{
		SuggestedPrice:   b.RoundedPrice,
		AverageSoldPrice: avg,
		Difference:       diff,
		Comparables:      count,
		Recommendation:   rec,
	}, nil
}

// complexityFactor is the mean complexity of the piece's stitches, 1.0
// when it uses none. Categories missing from the config table count as
// 1.0 rather than failing.
func (pr *Pricer) complexityFactor(piece Piece, snap Snapshot) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)

	if len(piece.StitchesUsed) == 0 {
		return one, nil
	}

	total := decimal.Zero

	for _, stitchID := range piece.StitchesUsed {
		stitch, ok := snap.Stitch(stitchID)
		if !ok {
			return decimal.Zero, fmt.Errorf("piece %s: stitch %s: %w", piece.ID, stitchID, ErrMissingReference)
		}

		factor, ok := pr.cfg.StitchComplexity[stitch.Category]
		if !ok {
			factor = one
		}

		total = total.Add(factor)
	}

	return total.Div(decimal.NewFromInt(int64(len(piece.StitchesUsed)))), nil
}

func (pr *Pricer) sizeFactor(pieceType PieceType) decimal.Decimal {
	factor, ok := pr.cfg.SizeFactor[pieceType]
	if !ok {
		return decimal.NewFromInt(1)
	}

	return factor
}

// comparable reports whether other is a pricing comparable for piece:
// same style when the piece has one, same type otherwise. A piece is
// never comparable to itself.
func comparable(piece, other Piece) bool {
	if other.ID == piece.ID {
		return false
	}

	if piece.StyleID != "" {
		return other.StyleID == piece.StyleID
	}

	return other.Type == piece.Type
}

// roundToMultiple rounds amount half up to the nearest multiple of
// step. A zero step disables rounding. Amounts here are non-negative,
// so decimal's round-half-away-from-zero is exactly half up.
func roundToMultiple(amount, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return amount
	}

	return amount.Div(step).Round(0).Mul(step)
}
