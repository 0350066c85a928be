package selector

import "math"

const (
	// MinWeight is the weight of an item that has always been answered correctly.
	MinWeight = 1
	// MaxWeight is the weight of an untried item or one never answered correctly.
	MaxWeight = 10
)

// Weight maps a success ratio to a selection weight in [MinWeight, MaxWeight].
// Untried items are weighted as ratio 0. Squaring the ratio penalizes
// partial failure more than proportionally: 0.5 gives 7, not 5.
func Weight(ratio float64, tried bool) int {
	if !tried {
		ratio = 0
	}
	ratio = math.Max(0, math.Min(1, ratio))
	return int(math.Floor(9*(1-ratio*ratio))) + MinWeight
}
