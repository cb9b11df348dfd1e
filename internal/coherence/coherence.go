// Package coherence scores how topically related a sentence draw is, using
// the language pack's domain keyword tables. Arguments built from sentences
// that share a domain read less like random noise.
package coherence

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/peircelogic/arggen/internal/corpus"
)

// Scorer detects domains and scores sentence sets against one language's
// keyword tables.
type Scorer struct {
	keywords map[string][]string
}

// NewScorer builds a scorer over domain keyword tables, typically a
// language pack's DomainKeywords.
func NewScorer(keywords map[string][]string) *Scorer {
	return &Scorer{keywords: keywords}
}

// Domains returns the domains whose keywords appear in the sentence,
// sorted for stable output. No match means no domains, not an error.
func (s *Scorer) Domains(sentence string) []string {
	lowered := strings.ToLower(sentence)

	var domains []string
	for domain, words := range s.keywords {
		for _, word := range words {
			if strings.Contains(lowered, strings.ToLower(word)) {
				domains = append(domains, domain)
				break
			}
		}
	}
	sort.Strings(domains)
	return domains
}

// Score rates a sentence set in [0,1]: the fraction of sentence pairs that
// share at least one detected domain. Fewer than two sentences score 1.
func (s *Scorer) Score(sentences []string) float64 {
	if len(sentences) < 2 {
		return 1
	}

	domains := make([][]string, len(sentences))
	for i, sentence := range sentences {
		domains[i] = s.Domains(sentence)
	}

	var pairs, shared int
	for i := 0; i < len(sentences); i++ {
		for j := i + 1; j < len(sentences); j++ {
			pairs++
			if sharesDomain(domains[i], domains[j]) {
				shared++
			}
		}
	}
	return float64(shared) / float64(pairs)
}

func sharesDomain(a, b []string) bool {
	for _, domain := range a {
		for _, other := range b {
			if domain == other {
				return true
			}
		}
	}
	return false
}

// SampleCoherent draws count sentences up to attempts times and keeps the
// best-scoring draw. With attempts <= 1 it is a plain sample.
func (s *Scorer) SampleCoherent(rng *rand.Rand, pool []string, count, attempts int) []string {
	best := corpus.Sample(rng, pool, count)
	if attempts <= 1 {
		return best
	}

	bestScore := s.Score(best)
	for i := 1; i < attempts && bestScore < 1; i++ {
		candidate := corpus.Sample(rng, pool, count)
		if score := s.Score(candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best
}
