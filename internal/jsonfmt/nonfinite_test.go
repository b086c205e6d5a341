package jsonfmt

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no tokens", input: `[1, "NaN", 2.5]`, want: `[1, "NaN", 2.5]`},
		{name: "bare tokens", input: `[NaN, Infinity, -Infinity]`, want: `[NaN, Infinity, -Infinity]`},
		{name: "object values", input: `{"current":[1.0,NaN],"x":Infinity}`, want: `{"current": [1.0, NaN], "x": Infinity}`},
		{name: "tokens inside strings untouched", input: `["NaN", "a \"Infinity\" b", "-Infinity"]`, want: `["NaN", "a \"Infinity\" b", "-Infinity"]`},
		{name: "string ending in backslash", input: `["\\", NaN]`, want: `["\\", NaN]`},
		{name: "existing numbers keep their value", input: `[0.71, 0.772, NaN]`, want: `[0.71, 0.772, NaN]`},
		{name: "negative numbers", input: `[-1, -0.5e3, -Infinity]`, want: `[-1, -500.0, -Infinity]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, lits := Normalize([]byte(tt.input))
			if !gjson.ValidBytes(data) {
				t.Fatalf("Normalize(%s) = %s, not valid JSON", tt.input, data)
			}
			got := Formatter{Literals: lits}.Compact(gjson.ParseBytes(data))
			if got != tt.want {
				t.Errorf("Compact(Normalize(%s)) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_RejectsGluedTokens(t *testing.T) {
	for _, input := range []string{`[NaNa]`, `[xNaN]`, `[1Infinity]`, `[--Infinity]`, `[nan]`, `[-NaN]`} {
		data, _ := Normalize([]byte(input))
		if gjson.ValidBytes(data) {
			t.Errorf("Normalize(%s) = %s, should stay invalid", input, data)
		}
	}
}

func TestNormalize_UnchangedInputIsShared(t *testing.T) {
	input := []byte(`{"trials": []}`)
	data, lits := Normalize(input)
	if &data[0] != &input[0] {
		t.Error("Normalize should return the input when there is nothing to replace")
	}
	if lits.NaN == "" || lits.PosInf == "" || lits.NegInf == "" {
		t.Errorf("Literals should be set: %+v", lits)
	}
	if strings.Contains(string(input), lits.NaN) {
		t.Errorf("placeholder %s occurs in input", lits.NaN)
	}
}

func TestCompact_ZeroFormatterIgnoresPlaceholders(t *testing.T) {
	data, lits := Normalize([]byte(`[NaN]`))
	if got := Compact(gjson.ParseBytes(data)); got == "[NaN]" {
		t.Errorf("zero Formatter should not know placeholder %s", lits.NaN)
	}
}

func TestFormatterList_NonFinite(t *testing.T) {
	data, lits := Normalize([]byte(`[[NaN, 1], [-Infinity]]`))
	got := string(Formatter{Literals: lits}.List(gjson.ParseBytes(data).Array()))
	want := "[\n [NaN, 1],\n [-Infinity]\n]\n"
	if got != want {
		t.Errorf("List() = %q, want %q", got, want)
	}
}
