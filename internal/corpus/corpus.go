// Package corpus loads and samples the sentence pools that argument
// variables are drawn from.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/peircelogic/arggen/internal/language"
)

// Corpus errors.
var (
	ErrTooFewSentences = errors.New("too few usable sentences")
)

// MinSentences is the smallest corpus worth generating from: three-sentence
// rules need that many distinct draws.
const MinSentences = 3

// Load reads a newline-separated sentence file. Blank lines and lines
// starting with # are skipped, surrounding whitespace and trailing
// sentence punctuation are trimmed, and duplicates are dropped preserving
// first occurrence.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentences file: %w", err)
	}
	defer file.Close()

	var sentences []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := Normalize(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sentences file %s: %w", path, err)
	}

	if len(sentences) < MinSentences {
		return nil, fmt.Errorf("%w in %s: have %d, need %d", ErrTooFewSentences, path, len(sentences), MinSentences)
	}

	return sentences, nil
}

// Builtin returns the builtin sentence pool for a language code.
func Builtin(code string) ([]string, error) {
	pack, err := language.Get(code)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(pack.Corpus))
	copy(out, pack.Corpus)
	return out, nil
}

// Normalize trims whitespace and trailing sentence punctuation, the form
// templates expect sentence variables in.
func Normalize(sentence string) string {
	return strings.TrimRight(strings.TrimSpace(sentence), ".!?")
}

// Sample draws count distinct sentences. When the pool is smaller than
// count the whole pool is returned in shuffled order.
func Sample(rng *rand.Rand, pool []string, count int) []string {
	if count >= len(pool) {
		out := make([]string, len(pool))
		copy(out, pool)
		shuffle(rng, out)
		return out
	}

	indexes := make([]int, len(pool))
	for i := range indexes {
		indexes[i] = i
	}
	shuffleInts(rng, indexes)

	out := make([]string, 0, count)
	for _, idx := range indexes[:count] {
		out = append(out, pool[idx])
	}
	return out
}

func shuffle(rng *rand.Rand, s []string) {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }
	if rng != nil {
		rng.Shuffle(len(s), swap)
		return
	}
	rand.Shuffle(len(s), swap)
}

func shuffleInts(rng *rand.Rand, s []int) {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }
	if rng != nil {
		rng.Shuffle(len(s), swap)
		return
	}
	rand.Shuffle(len(s), swap)
}
