package jsonfmt

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// List renders items as a JSON array with each element compacted onto its
// own line, indented by one space. The result always ends in "]\n"; an
// empty list renders as "[\n]\n".
func List(items []gjson.Result) []byte {
	return Formatter{}.List(items)
}

// List renders items like the package-level List.
func (f Formatter) List(items []gjson.Result) []byte {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, item := range items {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteByte(' ')
		buf.WriteString(f.Compact(item))
	}
	if len(items) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	return buf.Bytes()
}
