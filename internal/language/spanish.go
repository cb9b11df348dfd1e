package language

import "github.com/peircelogic/arggen/internal/linguistic"

// spanishPack builds a moderate Spanish pack: the core styles per family
// and a smaller corpus. Templates ship at the basic tier only.
func spanishPack() *Pack {
	lib := linguistic.NewPhraseLibrary()

	lib.AddStyle(linguistic.KindNegation, "simple",
		"no es cierto que {sentence}",
		"{sentence} es falso",
		"no ocurre que {sentence}",
	)
	lib.AddStyle(linguistic.KindNegation, "formal",
		"es falso que {sentence}",
		"no es el caso que {sentence}",
		"la proposición de que {sentence} es falsa",
	)

	lib.AddStyle(linguistic.KindConjunction, "standard",
		"{p} y {q}",
		"tanto {p} como {q}",
		"{p} y también {q}",
	)
	lib.AddStyle(linguistic.KindConjunction, "formal",
		"{p} en conjunción con {q}",
		"la conjunción de {p} y {q}",
	)

	lib.AddStyle(linguistic.KindDisjunction, "standard",
		"{p} o {q}",
		"o bien {p} o bien {q}",
		"al menos uno de {p} o {q}",
	)
	lib.AddStyle(linguistic.KindDisjunction, "exclusive",
		"o {p} o {q}, pero no ambos",
		"exactamente uno de {p} o {q}",
	)

	lib.AddStyle(linguistic.KindConditional, "standard",
		"si {antecedent}, entonces {consequent}",
		"cuando {antecedent}, {consequent}",
		"{consequent} si {antecedent}",
	)
	lib.AddStyle(linguistic.KindConditional, "formal",
		"{antecedent} implica {consequent}",
		"de {antecedent} se sigue que {consequent}",
	)

	return &Pack{
		Code:    "es",
		Name:    "Spanish",
		Library: lib,
		Corpus: []string{
			"las calles están mojadas",
			"está lloviendo afuera",
			"el museo está abierto hoy",
			"el tren llega a tiempo",
			"el experimento tuvo éxito",
			"el comité aprobó la propuesta",
			"el contrato es vinculante",
			"el puente soporta camiones pesados",
			"la panadería vende pan fresco",
			"los estudiantes aprobaron el examen",
			"la biblioteca amplía su horario en verano",
			"la actualización corrige el error",
			"la batería dura todo el día",
			"la receta lleva dos huevos",
			"el café está recién hecho",
			"la cosecha fue abundante este año",
			"el mercado cerró al alza hoy",
			"la empresa contrató nuevos ingenieros",
			"el río se desborda cada primavera",
			"los voluntarios limpiaron la playa",
			"la fábrica funciona sin descanso",
			"el equipo ganó el campeonato",
			"el vuelo se retrasó por la niebla",
			"el paciente se recuperó rápidamente",
		},
		ConclusionMarkers: []string{
			"Por lo tanto", "Así que", "En consecuencia", "Luego",
		},
		DomainKeywords: map[string][]string{
			"scientific": {"experimento", "actualización", "batería"},
			"legal":      {"contrato", "comité", "vinculante"},
			"business":   {"mercado", "empresa", "fábrica", "ingenieros"},
			"academic":   {"estudiantes", "examen", "biblioteca"},
			"everyday":   {"lloviendo", "calles", "panadería", "café", "receta", "tren", "vuelo"},
		},
	}
}
