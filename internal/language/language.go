// Package language provides per-language packs: phrase libraries for the
// variation generator, builtin sentence corpora, conclusion markers, and
// the template sets that seed a bank.
package language

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/peircelogic/arggen/internal/linguistic"
)

// Language registry errors.
var (
	ErrUnknownLanguage = errors.New("unknown language")
)

// Pack bundles everything language-specific the generator consumes. Packs
// are built once at registration and treated as read-only.
type Pack struct {
	// Code is the ISO 639-1 language code ("en", "es").
	Code string

	// Name is the human-readable language name.
	Name string

	// Library holds the phrase buckets for negation, conjunction,
	// disjunction, and conditional phrasings.
	Library *linguistic.PhraseLibrary

	// Corpus is the builtin sentence pool used when no sentences file is
	// supplied.
	Corpus []string

	// ConclusionMarkers are interchangeable conclusion connectives
	// ("Therefore", "Thus", ...). The first entry is the plain default.
	ConclusionMarkers []string

	// DomainKeywords maps domain names to the keywords coherence scoring
	// matches against sentence text.
	DomainKeywords map[string][]string
}

// ConclusionMarker picks a conclusion connective, the first one when rng is
// nil and no markers means a bare "Therefore".
func (p *Pack) ConclusionMarker(rng *rand.Rand) string {
	if len(p.ConclusionMarkers) == 0 {
		return "Therefore"
	}
	if rng == nil {
		return p.ConclusionMarkers[0]
	}
	return p.ConclusionMarkers[rng.IntN(len(p.ConclusionMarkers))]
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Pack)
)

// Register adds a pack under its language code. Registering the same code
// twice replaces the earlier pack.
func Register(pack *Pack) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[pack.Code] = pack
}

// Get returns the pack for a language code.
func Get(code string) (*Pack, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	pack, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return pack, nil
}

// Codes returns the registered language codes, sorted.
func Codes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func init() {
	Register(englishPack())
	Register(spanishPack())
}
