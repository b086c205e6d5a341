package jsonfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

const hexDigits = "0123456789abcdef"

// Formatter renders values read from a document normalized with the given
// Literals.
type Formatter struct {
	Literals Literals
}

// Compact serializes v on a single line.
func Compact(v gjson.Result) string {
	return Formatter{}.Compact(v)
}

// Compact serializes v on a single line.
func (f Formatter) Compact(v gjson.Result) string {
	var sb strings.Builder
	f.writeValue(&sb, v)
	return sb.String()
}

func (f Formatter) writeValue(sb *strings.Builder, v gjson.Result) {
	switch v.Type {
	case gjson.String:
		writeString(sb, v.Raw)
	case gjson.Number:
		if token, ok := f.Literals.lookup(v.Raw); ok {
			sb.WriteString(token)
			return
		}
		sb.WriteString(formatNumber(v.Raw))
	case gjson.True:
		sb.WriteString("true")
	case gjson.False:
		sb.WriteString("false")
	case gjson.Null:
		sb.WriteString("null")
	case gjson.JSON:
		if v.IsArray() {
			f.writeArray(sb, v)
		} else {
			f.writeObject(sb, v)
		}
	}
}

func (f Formatter) writeArray(sb *strings.Builder, v gjson.Result) {
	sb.WriteByte('[')
	for i, item := range v.Array() {
		if i > 0 {
			sb.WriteString(", ")
		}
		f.writeValue(sb, item)
	}
	sb.WriteByte(']')
}

type member struct {
	rawKey string
	value  gjson.Result
}

// writeObject keeps the first spelling and position of every key but the
// last value assigned to it.
func (f Formatter) writeObject(sb *strings.Builder, v gjson.Result) {
	var keys []string
	members := make(map[string]member)
	v.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		m, seen := members[k]
		if !seen {
			keys = append(keys, k)
			m.rawKey = key.Raw
		}
		m.value = value
		members[k] = m
		return true
	})

	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		m := members[k]
		writeString(sb, m.rawKey)
		sb.WriteString(": ")
		f.writeValue(sb, m.value)
	}
	sb.WriteByte('}')
}

// writeString re-encodes the quoted JSON string raw using only printable
// ASCII. It works from the escapes in raw, so surrogate escapes are
// carried over unchanged whether or not they are paired.
func writeString(sb *strings.Builder, raw string) {
	sb.WriteByte('"')
	body := strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	for i := 0; i < len(body); {
		if body[i] != '\\' || i+1 >= len(body) {
			r, size := utf8.DecodeRuneInString(body[i:])
			writeRune(sb, r)
			i += size
			continue
		}

		switch esc := body[i+1]; esc {
		case 'u':
			code, err := strconv.ParseUint(body[i+2:min(i+6, len(body))], 16, 16)
			if err != nil {
				writeRune(sb, utf8.RuneError)
				i += 2
				continue
			}
			if r := rune(code); utf16.IsSurrogate(r) {
				writeUnicodeEscape(sb, r)
			} else {
				writeRune(sb, r)
			}
			i += 6
		default:
			writeRune(sb, unescapeByte(esc))
			i += 2
		}
	}
	sb.WriteByte('"')
}

func unescapeByte(c byte) rune {
	switch c {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default: // '"', '\\', '/'
		return rune(c)
	}
}

func writeRune(sb *strings.Builder, r rune) {
	switch r {
	case '"':
		sb.WriteString(`\"`)
	case '\\':
		sb.WriteString(`\\`)
	case '\n':
		sb.WriteString(`\n`)
	case '\r':
		sb.WriteString(`\r`)
	case '\t':
		sb.WriteString(`\t`)
	case '\b':
		sb.WriteString(`\b`)
	case '\f':
		sb.WriteString(`\f`)
	default:
		switch {
		case r >= 0x20 && r < 0x7f:
			sb.WriteRune(r)
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			writeUnicodeEscape(sb, hi)
			writeUnicodeEscape(sb, lo)
		default:
			writeUnicodeEscape(sb, r)
		}
	}
}

func writeUnicodeEscape(sb *strings.Builder, r rune) {
	sb.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		sb.WriteByte(hexDigits[(r>>shift)&0xf])
	}
}

// formatNumber normalizes a JSON number literal. Integer literals keep
// their digits; anything with a fraction or exponent is a float and is
// printed in shortest round-trip form.
func formatNumber(raw string) string {
	if !strings.ContainsAny(raw, ".eE") {
		if raw == "-0" {
			return "0"
		}
		return raw
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !math.IsInf(f, 0) {
		return raw
	}
	return formatFloat(f)
}

// formatFloat prints f in fixed notation with at least one fractional digit,
// switching to scientific notation when the decimal exponent is below -4 or
// at least 16.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	// Shortest digits as d.ddddde±XX
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)

	sign := ""
	if strings.HasPrefix(mantissa, "-") {
		sign = "-"
		mantissa = mantissa[1:]
	}
	digits := strings.Replace(mantissa, ".", "", 1)

	if exp < -4 || exp >= 16 {
		var sb strings.Builder
		sb.WriteString(sign)
		sb.WriteByte(digits[0])
		if len(digits) > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('e')
		if exp < 0 {
			sb.WriteByte('-')
			exp = -exp
		} else {
			sb.WriteByte('+')
		}
		if exp < 10 {
			sb.WriteByte('0')
		}
		sb.WriteString(strconv.Itoa(exp))
		return sb.String()
	}

	// Position of the decimal point within digits
	point := exp + 1
	switch {
	case point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + digits
	case point >= len(digits):
		return sign + digits + strings.Repeat("0", point-len(digits)) + ".0"
	default:
		return sign + digits[:point] + "." + digits[point:]
	}
}
