package hookbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is the primary fiber of a yarn.
type Material string

// Materials.
const (
	MaterialCotton  Material = "cotton"
	MaterialWool    Material = "wool"
	MaterialAcrylic Material = "acrylic"
	MaterialSilk    Material = "silk"
	MaterialBlend   Material = "blend"
	MaterialOther   Material = "other"
)

// WeightCategory is the standard yarn weight class, thinnest first.
type WeightCategory string

// Weight categories.
const (
	WeightLace       WeightCategory = "lace"
	WeightFingering  WeightCategory = "fingering"
	WeightSport      WeightCategory = "sport"
	WeightDK         WeightCategory = "dk"
	WeightWorsted    WeightCategory = "worsted"
	WeightAran       WeightCategory = "aran"
	WeightBulky      WeightCategory = "bulky"
	WeightSuperBulky WeightCategory = "super_bulky"
)

// Yarn is a material record in the stash. PricePaid is per ball and
// feeds the material cost of every piece that uses the yarn.
type Yarn struct {
	ID    string
	Name  string
	Brand string
	Color string

	Material       Material
	WeightCategory WeightCategory

	PricePaid     decimal.Decimal
	QuantityOwned int

	Notes string

	Archival
	CreatedAt time.Time
	UpdatedAt time.Time
}
