package export

import (
	"fmt"
	"math/rand/v2"

	"github.com/peircelogic/arggen/internal/generate"
)

// SplitRatios carries the train/validation/test shares.
type SplitRatios struct {
	Train      float64
	Validation float64
	Test       float64
}

// DefaultSplits is the conventional 80/10/10 partition.
var DefaultSplits = SplitRatios{Train: 0.8, Validation: 0.1, Test: 0.1}

// Validate rejects ratios that do not partition the dataset.
func (r SplitRatios) Validate() error {
	if r.Train < 0 || r.Validation < 0 || r.Test < 0 {
		return fmt.Errorf("split ratios must be non-negative, got %.2f/%.2f/%.2f", r.Train, r.Validation, r.Test)
	}
	sum := r.Train + r.Validation + r.Test
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("split ratios sum to %.3f, want 1", sum)
	}
	return nil
}

// Splits holds a partitioned dataset.
type Splits struct {
	Train      []generate.Argument
	Validation []generate.Argument
	Test       []generate.Argument
}

// Split shuffles the arguments with rng and partitions them by ratio.
// Train takes its floor share, validation its floor share, test the
// remainder, so every record lands in exactly one split. A nil rng skips
// shuffling and partitions in input order.
func Split(rng *rand.Rand, args []generate.Argument, ratios SplitRatios) (Splits, error) {
	if err := ratios.Validate(); err != nil {
		return Splits{}, err
	}

	shuffled := make([]generate.Argument, len(args))
	copy(shuffled, args)
	if rng != nil {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
	}

	trainEnd := int(float64(len(shuffled)) * ratios.Train)
	valEnd := trainEnd + int(float64(len(shuffled))*ratios.Validation)
	if valEnd > len(shuffled) {
		valEnd = len(shuffled)
	}

	return Splits{
		Train:      shuffled[:trainEnd],
		Validation: shuffled[trainEnd:valEnd],
		Test:       shuffled[valEnd:],
	}, nil
}
