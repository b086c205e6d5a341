package jsonfmt

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty array", input: `[]`, want: `[]`},
		{name: "string array", input: `["b","c"]`, want: `["b", "c"]`},
		{name: "nested arrays", input: `[[1,2],[ ],[3]]`, want: `[[1, 2], [], [3]]`},
		{name: "object keeps key order", input: `{"z":1,"a":[true,false,null]}`, want: `{"z": 1, "a": [true, false, null]}`},
		{name: "duplicate key keeps last value at first position", input: `{"a":1,"b":2,"a":3}`, want: `{"a": 3, "b": 2}`},
		{name: "empty object", input: `{ }`, want: `{}`},
		{name: "whitespace dropped", input: "[ \"x\" ,\n\t\"y\" ]", want: `["x", "y"]`},
		{name: "node labels", input: `["grid@0,1","grid@1,2"]`, want: `["grid@0,1", "grid@1,2"]`},
		{name: "duplicate key spelled differently", input: `{"a":1,"\u0061":2}`, want: `{"a": 2}`},
		{name: "escaped key", input: `{"\u00e9":1}`, want: `{"\u00e9": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compact(gjson.Parse(tt.input))
			if got != tt.want {
				t.Errorf("Compact(%s) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompact_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `"abc"`, want: `"abc"`},
		{name: "quote and backslash", input: `"a\"b\\c"`, want: `"a\"b\\c"`},
		{name: "short escapes", input: `"\n\r\t\b\f"`, want: `"\n\r\t\b\f"`},
		{name: "solidus unescaped", input: `"a\/b"`, want: `"a/b"`},
		{name: "control character", input: `"\u0001"`, want: `"\u0001"`},
		{name: "delete character", input: `"\u007f"`, want: `"\u007f"`},
		{name: "non-ascii escaped lowercase", input: `"é"`, want: `"\u00e9"`},
		{name: "bmp escape kept", input: `"\u2603"`, want: `"\u2603"`},
		{name: "astral plane as surrogate pair", input: `"😀"`, want: `"\ud83d\ude00"`},
		{name: "escaped surrogate pair kept", input: `"\uD83D\uDE00"`, want: `"\ud83d\ude00"`},
		{name: "lone high surrogate kept", input: `"a\ud800b"`, want: `"a\ud800b"`},
		{name: "lone low surrogate kept", input: `"\uDC00"`, want: `"\udc00"`},
		{name: "escaped printable ascii decoded", input: `"\u0041\u0020"`, want: `"A "`},
		{name: "escaped quote", input: `"\u0022"`, want: `"\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compact(gjson.Parse(tt.input))
			if got != tt.want {
				t.Errorf("Compact(%s) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompact_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `0`, want: `0`},
		{input: `-0`, want: `0`},
		{input: `42`, want: `42`},
		{input: `-17`, want: `-17`},
		{input: `123456789012345678901234567890`, want: `123456789012345678901234567890`},
		{input: `1.0`, want: `1.0`},
		{input: `1.50`, want: `1.5`},
		{input: `-0.0`, want: `-0.0`},
		{input: `0.1`, want: `0.1`},
		{input: `100.0`, want: `100.0`},
		{input: `1e2`, want: `100.0`},
		{input: `2.5E-3`, want: `0.0025`},
		{input: `0.0001`, want: `0.0001`},
		{input: `0.00001`, want: `1e-05`},
		{input: `1e15`, want: `1000000000000000.0`},
		{input: `1e16`, want: `1e+16`},
		{input: `1.5e16`, want: `1.5e+16`},
		{input: `1e100`, want: `1e+100`},
		{input: `-2.5e-7`, want: `-2.5e-07`},
		{input: `1e999`, want: `Infinity`},
		{input: `-1e999`, want: `-Infinity`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Compact(gjson.Parse(tt.input))
			if got != tt.want {
				t.Errorf("Compact(%s) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
