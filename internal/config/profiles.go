package config

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile marks a profile name with no registered overlay.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile is a named configuration overlay. Apply copies only its set
// fields over a loaded configuration, so flags and env can still win
// afterwards.
type Profile struct {
	Name        string
	Description string

	Language   string
	Complexity string
	Domain     string
	Preset     string
	Coherent   bool
}

var profiles = []Profile{
	{
		Name:        "beginner",
		Description: "Simple everyday arguments for logic beginners",
		Language:    "en",
		Complexity:  "basic",
		Domain:      "everyday",
		Preset:      "basic-logic",
		Coherent:    true,
	},
	{
		Name:        "advanced-logic",
		Description: "Complex academic arguments for advanced study",
		Language:    "en",
		Complexity:  "expert",
		Domain:      "academic",
		Preset:      "balanced",
	},
	{
		Name:        "multilingual-demo",
		Description: "Showcase arguments from the non-English pack",
		Language:    "es",
		Complexity:  "intermediate",
		Preset:      "balanced",
	},
}

// Profiles returns the registered profiles.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// ProfileByName looks up a profile.
func ProfileByName(name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
}

// Apply overlays the profile's set fields onto cfg.
func (p Profile) Apply(cfg *Config) {
	if p.Language != "" {
		cfg.Language = p.Language
	}
	if p.Complexity != "" {
		cfg.Complexity = p.Complexity
	}
	if p.Domain != "" {
		cfg.Domain = p.Domain
	}
	if p.Preset != "" {
		cfg.Preset = p.Preset
		cfg.Proportions = nil
	}
	if p.Coherent {
		cfg.Coherent = true
	}
}
