package hookbook

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tailscale/hujson"
)

// Config holds the pricing and comparison parameters. The zero value is
// not useful; start from [DefaultConfig] or [ParseConfig].
type Config struct {
	// HourlyRate is what an hour of work is worth, in currency units.
	HourlyRate decimal.Decimal

	// ProfitMargin is applied to the adjusted subtotal (0.20 = 20%).
	ProfitMargin decimal.Decimal

	// MinMargin is the floor margin a caller may clamp against. The
	// engine carries it but no formula consumes it; it exists for
	// pricing flows that let the user negotiate downwards.
	MinMargin decimal.Decimal

	// RoundTo rounds the suggested price to the nearest multiple, half
	// up. Zero disables rounding.
	RoundTo decimal.Decimal

	// MarketTolerance is the band around the average sold price inside
	// which a suggested price counts as on target (0.10 = +/-10%).
	MarketTolerance decimal.Decimal

	// StitchComplexity maps stitch categories to price multipliers.
	// Categories not in the map count as 1.0.
	StitchComplexity map[StitchCategory]decimal.Decimal

	// SizeFactor maps piece types to price multipliers. Types not in
	// the map count as 1.0.
	SizeFactor map[PieceType]decimal.Decimal
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		HourlyRate:      decimal.RequireFromString("8.00"),
		ProfitMargin:    decimal.RequireFromString("0.20"),
		MinMargin:       decimal.RequireFromString("0.10"),
		RoundTo:         decimal.NewFromInt(5),
		MarketTolerance: decimal.RequireFromString("0.10"),
		StitchComplexity: map[StitchCategory]decimal.Decimal{
			StitchBasic:     decimal.RequireFromString("1.0"),
			StitchTextured:  decimal.RequireFromString("1.15"),
			StitchLace:      decimal.RequireFromString("1.25"),
			StitchColorwork: decimal.RequireFromString("1.30"),
			StitchSpecialty: decimal.RequireFromString("1.40"),
		},
		SizeFactor: map[PieceType]decimal.Decimal{
			PieceHat:     decimal.RequireFromString("0.8"),
			PieceCowl:    decimal.RequireFromString("0.9"),
			PieceScarf:   decimal.RequireFromString("1.0"),
			PieceShawl:   decimal.RequireFromString("1.2"),
			PieceBlanket: decimal.RequireFromString("1.5"),
			PieceOther:   decimal.RequireFromString("1.0"),
		},
	}
}

// rawConfig is the wire shape of a config document. Pointer fields
// distinguish "absent" from "explicit zero".
type rawConfig struct {
	HourlyRate       *decimal.Decimal           `json:"hourly_rate"`
	ProfitMargin     *decimal.Decimal           `json:"profit_margin"`
	MinMargin        *decimal.Decimal           `json:"min_margin"`
	RoundTo          *decimal.Decimal           `json:"round_to"`
	MarketTolerance  *decimal.Decimal           `json:"market_tolerance"`
	StitchComplexity map[string]decimal.Decimal `json:"stitch_complexity"`
	SizeFactor       map[string]decimal.Decimal `json:"size_factor"`
}

// ParseConfig builds a Config from a JSON document, which may carry
// comments and trailing commas (JWCC). Missing keys keep their defaults,
// factor maps are merged key by key over the default tables, and
// unrecognized keys are ignored. The caller supplies the bytes; this
// package does not read files.
func ParseConfig(data []byte) (Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var raw rawConfig

	err = json.Unmarshal(std, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := DefaultConfig()

	if raw.HourlyRate != nil {
		cfg.HourlyRate = *raw.HourlyRate
	}

	if raw.ProfitMargin != nil {
		cfg.ProfitMargin = *raw.ProfitMargin
	}

	if raw.MinMargin != nil {
		cfg.MinMargin = *raw.MinMargin
	}

	if raw.RoundTo != nil {
		cfg.RoundTo = *raw.RoundTo
	}

	if raw.MarketTolerance != nil {
		cfg.MarketTolerance = *raw.MarketTolerance
	}

	for category, factor := range raw.StitchComplexity {
		cfg.StitchComplexity[StitchCategory(category)] = factor
	}

	for pieceType, factor := range raw.SizeFactor {
		cfg.SizeFactor[PieceType(pieceType)] = factor
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects negative rates, margins and factors. A zero RoundTo
// is valid (rounding disabled).
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value decimal.Decimal
	}{
		{"hourly_rate", c.HourlyRate},
		{"profit_margin", c.ProfitMargin},
		{"min_margin", c.MinMargin},
		{"round_to", c.RoundTo},
		{"market_tolerance", c.MarketTolerance},
	}

	for _, check := range checks {
		if check.value.IsNegative() {
			return fmt.Errorf("%w: %s is negative (%s)", ErrInvalidConfig, check.name, check.value)
		}
	}

	for category, factor := range c.StitchComplexity {
		if factor.IsNegative() {
			return fmt.Errorf("%w: stitch_complexity[%s] is negative (%s)", ErrInvalidConfig, category, factor)
		}
	}

	for pieceType, factor := range c.SizeFactor {
		if factor.IsNegative() {
			return fmt.Errorf("%w: size_factor[%s] is negative (%s)", ErrInvalidConfig, pieceType, factor)
		}
	}

	return nil
}
