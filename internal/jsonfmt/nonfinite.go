package jsonfmt

import "bytes"

// Literals records the number placeholders that stand in for the NaN,
// Infinity and -Infinity tokens of a normalized document. The zero value
// matches nothing.
type Literals struct {
	NaN    string
	PosInf string
	NegInf string
}

// lookup maps a placeholder back to the token it replaced.
func (l Literals) lookup(raw string) (string, bool) {
	switch {
	case raw == "":
		return "", false
	case raw == l.NaN:
		return "NaN", true
	case raw == l.PosInf:
		return "Infinity", true
	case raw == l.NegInf:
		return "-Infinity", true
	}
	return "", false
}

// Normalize replaces bare NaN, Infinity and -Infinity tokens outside of
// strings with number literals so the result can be validated and queried
// as strict JSON. The placeholders share a prefix that does not occur in
// data, so no number already in data can be mistaken for one.
func Normalize(data []byte) ([]byte, Literals) {
	prefix := "0.7"
	for bytes.Contains(data, []byte(prefix)) {
		prefix += "7"
	}
	lits := Literals{NaN: prefix + "1", PosInf: prefix + "2", NegInf: "-" + prefix + "2"}

	tokens := []struct{ token, literal string }{
		{"-Infinity", lits.NegInf},
		{"Infinity", lits.PosInf},
		{"NaN", lits.NaN},
	}

	var out []byte
	inString, escaped := false, false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			if out != nil {
				out = append(out, c)
			}
			continue
		}
		if c == '"' {
			inString = true
		}

		if c == '-' || c == 'I' || c == 'N' {
			if literal, n := matchToken(data, i, tokens); n > 0 {
				if out == nil {
					out = append(make([]byte, 0, len(data)+16), data[:i]...)
				}
				out = append(out, literal...)
				i += n - 1
				continue
			}
		}
		if out != nil {
			out = append(out, c)
		}
	}

	if out == nil {
		return data, lits
	}
	return out, lits
}

// matchToken reports the placeholder and token length when a standalone
// token starts at data[i].
func matchToken(data []byte, i int, tokens []struct{ token, literal string }) (string, int) {
	if i > 0 && isWordByte(data[i-1]) {
		return "", 0
	}
	for _, t := range tokens {
		if !bytes.HasPrefix(data[i:], []byte(t.token)) {
			continue
		}
		end := i + len(t.token)
		if end < len(data) && isWordByte(data[end]) {
			return "", 0
		}
		return t.literal, len(t.token)
	}
	return "", 0
}

func isWordByte(c byte) bool {
	return c == '.' || c == '+' || c == '-' || c == '_' ||
		(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
