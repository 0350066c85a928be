package selector

import (
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/conorfennell/wiederholung/internal/domain"
)

// Selector draws the next item to drill, favoring items that were missed.
type Selector struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// New creates a Selector. A nil rng is replaced by one seeded from the clock.
func New(rng *rand.Rand, logger *slog.Logger) *Selector {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Selector{rng: rng, logger: logger}
}

// Weights returns the selection weight of every item, in order.
func Weights(items []*domain.Item) []int {
	ws := make([]int, len(items))
	for i, it := range items {
		ws[i] = Weight(it.Ratio())
	}
	return ws
}

// Pick returns one of items with probability proportional to its weight.
// items must not be empty.
func (s *Selector) Pick(items []*domain.Item) *domain.Item {
	if len(items) == 0 {
		panic("selector: Pick called with no items")
	}

	ws := Weights(items)
	prefix := make([]int, len(ws))
	sum := 0
	for i, w := range ws {
		sum += w
		prefix[i] = sum
	}
	s.logger.Debug("weights", "weights", ws, "sum", sum)

	// The draw is over [0, sum] inclusive; the first prefix reaching it wins.
	draw := s.rng.IntN(sum + 1)
	i := sort.SearchInts(prefix, draw)
	if i == len(items) {
		s.logger.Warn("weighted draw found no item, using first", "draw", draw, "sum", sum)
		return items[0]
	}
	return items[i]
}
