package strength

import "testing"

func TestAnalyzeValidOutranksFallacy(t *testing.T) {
	text := "If it rains, then the streets are wet. It rains. Therefore, the streets are wet."

	valid := Analyze(text, true)
	invalid := Analyze(text, false)

	if valid.LogicalValidity != 1 {
		t.Fatalf("valid validity = %v", valid.LogicalValidity)
	}
	if invalid.LogicalValidity >= valid.LogicalValidity {
		t.Fatalf("fallacy validity %v not below valid %v", invalid.LogicalValidity, valid.LogicalValidity)
	}
	if invalid.Persuasiveness >= valid.Persuasiveness {
		t.Fatalf("fallacy persuasiveness %v not below valid %v", invalid.Persuasiveness, valid.Persuasiveness)
	}
}

func TestAnalyzeHedgingLowersPlausibility(t *testing.T) {
	confident := Analyze("The data is conclusive. The method is sound.", true)
	hedged := Analyze("Maybe the data is conclusive. Perhaps the method might be sound.", true)

	if hedged.PremisePlausibility >= confident.PremisePlausibility {
		t.Fatalf("hedged %v not below confident %v",
			hedged.PremisePlausibility, confident.PremisePlausibility)
	}
}

func TestAnalyzeScoresStayInRange(t *testing.T) {
	texts := []string{
		"",
		"Short.",
		"Maybe maybe maybe maybe maybe maybe maybe maybe maybe.",
		"Therefore thus hence consequently moreover furthermore because since.",
	}
	for _, text := range texts {
		for _, valid := range []bool{true, false} {
			report := Analyze(text, valid)
			for name, score := range map[string]float64{
				"validity":       report.LogicalValidity,
				"plausibility":   report.PremisePlausibility,
				"clarity":        report.LinguisticClarity,
				"persuasiveness": report.Persuasiveness,
			} {
				if score < 0 || score > 1 {
					t.Fatalf("%s out of range for %q: %v", name, text, score)
				}
			}
		}
	}
}
