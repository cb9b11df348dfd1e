package template

import (
	"reflect"
	"testing"
)

func TestParseStaticOnly(t *testing.T) {
	got := Parse("plain text with no delimiters")
	want := []Component{Static("plain text with no delimiters")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseVariables(t *testing.T) {
	got := Parse("If {p}, then {q}.")
	want := []Component{
		Static("If "),
		Variable("p"),
		Static(", then "),
		Variable("q"),
		Static("."),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseVariation(t *testing.T) {
	got := Parse("[[therefore|thus|hence]] {q}")
	want := []Component{
		Variation("", "therefore", "thus", "hence"),
		Static(" "),
		Variable("q"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseVariablesBeforeVariation(t *testing.T) {
	// Text preceding a variation is itself scanned for variables.
	got := Parse("{P}. [[Therefore|Thus]], {q}.")
	want := []Component{
		Variable("P"),
		Static(". "),
		Variation("", "Therefore", "Thus"),
		Static(", "),
		Variable("q"),
		Static("."),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseVariationChoicesKeepPlaceholders(t *testing.T) {
	got := Parse("[[if {p}, then {q}|{p} implies {q}]]")
	if len(got) != 1 || got[0].Kind != KindVariation {
		t.Fatalf("expected one variation, got %+v", got)
	}
	want := []string{"if {p}, then {q}", "{p} implies {q}"}
	if !reflect.DeepEqual(got[0].Choices, want) {
		t.Fatalf("choices %v, want %v", got[0].Choices, want)
	}
}

func TestParseUnterminatedVariationIsStatic(t *testing.T) {
	got := Parse("If [[p")
	want := []Component{Static("If [[p")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseUnterminatedVariableIsStatic(t *testing.T) {
	got := Parse("a { b")
	want := []Component{Static("a { b")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseEmptyBracesAreLiteral(t *testing.T) {
	got := Parse("x {} y")
	want := []Component{Static("x {} y")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseEmpty(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("expected no components, got %+v", got)
	}
}
