package linguistic

import "math/rand/v2"

// SelectStyle picks one style name from available.
//
// The policy, in order: an explicitly requested style wins when it is
// available; basic complexity prefers "simple" and otherwise the first
// declared style; expert complexity prefers "formal" and otherwise the last
// declared style; everything else picks uniformly at random. The order of
// available is the library's declared order, so the first/last fallbacks are
// stable across runs.
func SelectStyle(available []string, complexity ComplexityLevel, explicit string, rng *rand.Rand) string {
	if len(available) == 0 {
		return ""
	}

	if explicit != "" {
		for _, style := range available {
			if style == explicit {
				return style
			}
		}
	}

	switch complexity {
	case ComplexityBasic:
		for _, style := range available {
			if style == "simple" {
				return style
			}
		}
		return available[0]
	case ComplexityExpert:
		for _, style := range available {
			if style == "formal" {
				return style
			}
		}
		return available[len(available)-1]
	}

	return available[intN(rng, len(available))]
}

// intN draws from rng, falling back to the shared top-level source when the
// caller did not inject one.
func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
