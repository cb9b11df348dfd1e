package language

import "github.com/peircelogic/arggen/internal/linguistic"

// englishPack builds the full English pack: four styles per variation
// family, a forty-plus sentence corpus, and domain keyword tables.
func englishPack() *Pack {
	lib := linguistic.NewPhraseLibrary()

	lib.AddStyle(linguistic.KindNegation, "simple",
		"{sentence} is not the case",
		"{sentence} is false",
		"not {sentence}",
		"{sentence} doesn't hold",
		"{sentence} is not true",
	)
	lib.AddStyle(linguistic.KindNegation, "formal",
		"it is false that {sentence}",
		"it is not the case that {sentence}",
		"the proposition that {sentence} is false",
		"it is not true that {sentence}",
		"the claim that {sentence} is false",
	)
	lib.AddStyle(linguistic.KindNegation, "emphatic",
		"{sentence} is definitely false",
		"{sentence} is certainly not the case",
		"{sentence} is absolutely false",
		"there is no way that {sentence}",
		"under no circumstances is it true that {sentence}",
	)
	lib.AddStyle(linguistic.KindNegation, "colloquial",
		"{sentence} isn't true",
		"no way {sentence}",
		"{sentence} is not a thing",
		"forget the idea that {sentence}",
	)

	lib.AddStyle(linguistic.KindConjunction, "standard",
		"{p} and {q}",
		"{p}, and {q}",
		"both {p} and {q}",
		"{p} as well as {q}",
	)
	lib.AddStyle(linguistic.KindConjunction, "formal",
		"{p} in conjunction with {q}",
		"{p} conjoined with {q}",
		"the conjunction of {p} and {q}",
		"{p} and simultaneously {q}",
	)
	lib.AddStyle(linguistic.KindConjunction, "sequential",
		"{p}, and also {q}",
		"{p}, moreover {q}",
		"{p}, furthermore {q}",
		"{p}, in addition {q}",
	)
	lib.AddStyle(linguistic.KindConjunction, "emphatic",
		"not only {p} but also {q}",
		"{p} and, equally, {q}",
		"{p} together with {q}",
		"the combination of {p} and {q}",
	)

	lib.AddStyle(linguistic.KindDisjunction, "standard",
		"{p} or {q}",
		"either {p} or {q}",
		"{p} or alternatively {q}",
		"at least one of {p} or {q}",
	)
	lib.AddStyle(linguistic.KindDisjunction, "exclusive",
		"either {p} or {q} but not both",
		"exactly one of {p} or {q}",
		"{p} or {q}, but not both",
	)
	lib.AddStyle(linguistic.KindDisjunction, "formal",
		"{p} or else {q}",
		"the disjunction of {p} and {q}",
		"either proposition {p} or proposition {q}",
	)
	lib.AddStyle(linguistic.KindDisjunction, "colloquial",
		"it's either {p} or {q}",
		"one of two things: {p} or {q}",
		"the options are {p} or {q}",
	)

	lib.AddStyle(linguistic.KindConditional, "standard",
		"if {antecedent}, then {consequent}",
		"if {antecedent} then {consequent}",
		"{consequent} if {antecedent}",
		"given {antecedent}, {consequent}",
		"when {antecedent}, {consequent}",
	)
	lib.AddStyle(linguistic.KindConditional, "formal",
		"{antecedent} implies {consequent}",
		"{antecedent} entails {consequent}",
		"from {antecedent} it follows that {consequent}",
		"the truth of {antecedent} guarantees that {consequent}",
	)
	lib.AddStyle(linguistic.KindConditional, "reversed",
		"{consequent}, provided that {antecedent}",
		"{consequent} whenever {antecedent}",
		"{consequent}, assuming {antecedent}",
	)
	lib.AddStyle(linguistic.KindConditional, "necessity",
		"{antecedent} only if {consequent}",
		"{antecedent} requires {consequent}",
		"without {consequent}, not {antecedent}",
		"{antecedent} depends on {consequent}",
	)

	return &Pack{
		Code:    "en",
		Name:    "English",
		Library: lib,
		Corpus: []string{
			"the streets are wet",
			"it is raining outside",
			"the museum is open today",
			"the train arrives on time",
			"the experiment succeeded",
			"the hypothesis is supported by the data",
			"the committee approved the proposal",
			"the contract is legally binding",
			"the witness testified truthfully",
			"the bridge can carry heavy trucks",
			"the garden needs watering",
			"the bakery sells fresh bread",
			"the students passed the exam",
			"the library extends its hours in summer",
			"the orchestra rehearses on Tuesdays",
			"the software update fixes the bug",
			"the server responds within a second",
			"the battery lasts all day",
			"the recipe calls for two eggs",
			"the coffee is freshly brewed",
			"the harvest was plentiful this year",
			"the glacier is retreating",
			"the vaccine provides lasting immunity",
			"the market closed higher today",
			"the company hired new engineers",
			"the lecture covers medieval history",
			"the painting was restored last year",
			"the river floods every spring",
			"the telescope detected a new comet",
			"the volunteers cleaned the beach",
			"the mayor announced a new policy",
			"the factory runs around the clock",
			"the keyboard needs new batteries",
			"the team won the championship",
			"the flight was delayed by fog",
			"the patient recovered quickly",
			"the novel won a literary prize",
			"the store offers free delivery",
			"the thermostat controls the heating",
			"the choir performs next weekend",
			"the archive preserves old manuscripts",
			"the satellite transmits weather data",
		},
		ConclusionMarkers: []string{
			"Therefore", "Thus", "Hence", "Consequently", "So", "It follows that",
		},
		DomainKeywords: map[string][]string{
			"scientific": {"experiment", "hypothesis", "data", "vaccine", "telescope", "satellite", "glacier", "comet"},
			"legal":      {"contract", "witness", "committee", "policy", "testified", "binding", "mayor"},
			"business":   {"market", "company", "store", "factory", "delivery", "hired", "engineers"},
			"academic":   {"students", "exam", "lecture", "library", "novel", "archive", "manuscripts"},
			"everyday":   {"rain", "streets", "garden", "bakery", "coffee", "recipe", "train", "flight"},
		},
	}
}
