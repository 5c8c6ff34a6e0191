package pricing

import (
	"errors"
	"math"
)

// Tier is one of the fixed subscription tiers.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

var (
	ErrUnknownTier     = errors.New("pricing: unknown tier")
	ErrUnknownDuration = errors.New("pricing: unsupported duration")
)

// Base monthly prices in tenge.
var basePrice = map[Tier]float64{
	TierStandard: 3990,
	TierPremium:  5990,
}

// Longer commitments are discounted via a fixed multiplier table.
var durationDiscount = map[int]float64{
	1:  1.0,
	3:  0.9,
	6:  0.85,
	12: 0.75,
}

// Calculate returns the displayed total for a tier over a duration in
// months. Display only: the backend is authoritative at payment time.
func Calculate(tier Tier, months int) (int, error) {
	base, ok := basePrice[tier]
	if !ok {
		return 0, ErrUnknownTier
	}
	mult, ok := durationDiscount[months]
	if !ok {
		return 0, ErrUnknownDuration
	}
	return int(math.Round(base * float64(months) * mult)), nil
}

// Option is one cell of the pricing grid shown on the pricing page.
type Option struct {
	Tier   Tier
	Months int
	Price  int
}

// Options returns the full tier x duration grid in display order.
func Options() []Option {
	tiers := []Tier{TierStandard, TierPremium}
	durations := []int{1, 3, 6, 12}

	opts := make([]Option, 0, len(tiers)*len(durations))
	for _, t := range tiers {
		for _, m := range durations {
			price, _ := Calculate(t, m)
			opts = append(opts, Option{Tier: t, Months: m, Price: price})
		}
	}
	return opts
}
