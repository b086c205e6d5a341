package results

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/gorewood/delorder/internal/jsonfmt"
	"github.com/gorewood/delorder/internal/output"
)

// ErrParse is returned when a results file is not valid UTF-8 encoded JSON.
var ErrParse = errors.New("invalid JSON")

// ErrStructure is returned when a results file lacks an expected field or
// the requested trial does not exist.
var ErrStructure = errors.New("unexpected results structure")

// ErrInvariant is returned when a trial's deletion order does not begin
// with the empty initial state.
var ErrInvariant = errors.New("deletion order does not start with the initial state")

// Document is a parsed results file.
type Document struct {
	source string
	raw    []byte
	format jsonfmt.Formatter
}

// Load reads and validates the results file at path.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, output.NewUserErrorWithCause("results file not found: "+path, err)
		}
		return nil, output.NewSystemErrorWithCause("failed to open results file: "+path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read results file: "+path, err)
	}
	return Parse(path, data)
}

// Parse validates data as JSON. The NaN, Infinity and -Infinity constants
// are accepted wherever a number may appear. source names the data in
// error messages.
func Parse(source string, data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, output.NewMalformedError(
			fmt.Sprintf("failed to parse %s: %v: not UTF-8", source, ErrParse), ErrParse)
	}

	normalized, lits := jsonfmt.Normalize(data)
	if !gjson.ValidBytes(normalized) {
		return nil, output.NewMalformedError(
			fmt.Sprintf("failed to parse %s: %v", source, ErrParse), ErrParse)
	}
	return &Document{
		source: source,
		raw:    normalized,
		format: jsonfmt.Formatter{Literals: lits},
	}, nil
}

// Source returns the path or name the document was read from.
func (d *Document) Source() string {
	return d.source
}

// Size returns the length of the document in bytes.
func (d *Document) Size() int {
	return len(d.raw)
}

// Formatter returns the formatter that renders values of this document.
func (d *Document) Formatter() jsonfmt.Formatter {
	return d.format
}

// Trials returns the trial records in file order.
func (d *Document) Trials() ([]gjson.Result, error) {
	trials := member(gjson.ParseBytes(d.raw), "trials")
	if !trials.IsArray() {
		return nil, d.structureError(`missing "trials" list`)
	}
	return trials.Array(), nil
}

// TrialCount returns the number of trial records.
func (d *Document) TrialCount() (int, error) {
	trials, err := d.Trials()
	if err != nil {
		return 0, err
	}
	return len(trials), nil
}

// resolveIndex maps a trial index onto a position in trials. Negative
// indexes count back from the last trial.
func resolveIndex(n, count int) (int, bool) {
	idx := n
	if idx < 0 {
		idx += count
	}
	if idx < 0 || idx >= count {
		return 0, false
	}
	return idx, true
}

// DeletionOrder returns the deleted steps of trial n that follow the
// initial state, in order.
func (d *Document) DeletionOrder(n int) ([]gjson.Result, error) {
	trials, err := d.Trials()
	if err != nil {
		return nil, err
	}

	idx, ok := resolveIndex(n, len(trials))
	if !ok {
		return nil, d.structureError(fmt.Sprintf("trial index %d out of range (%d trials)", n, len(trials)))
	}
	trial := trials[idx]

	steps := member(trial, "steps")
	if !steps.IsObject() {
		return nil, d.structureError(fmt.Sprintf(`trial %d: missing "steps" object`, idx))
	}

	deleted := member(steps, "deleted")
	if !deleted.IsArray() {
		return nil, d.structureError(fmt.Sprintf(`trial %d: missing "steps.deleted" list`, idx))
	}

	entries := deleted.Array()
	if len(entries) == 0 {
		return nil, d.structureError(fmt.Sprintf(`trial %d: "steps.deleted" is empty`, idx))
	}

	if !isEmptyList(entries[0]) {
		return nil, output.NewInvariantError(
			fmt.Sprintf("%s: trial %d: first deleted step is %s, want []",
				d.source, idx, d.format.Compact(entries[0])),
			ErrInvariant)
	}

	return entries[1:], nil
}

func (d *Document) structureError(detail string) error {
	return output.NewMalformedError(d.source+": "+detail, ErrStructure)
}

// member returns the value of key in obj. When key occurs more than once
// the last occurrence wins.
func member(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	if !obj.IsObject() {
		return found
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}

func isEmptyList(v gjson.Result) bool {
	return v.IsArray() && len(v.Array()) == 0
}
