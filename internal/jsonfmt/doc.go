// Package jsonfmt renders JSON values in the layout used by defect trial
// tooling: compact values with ", " and ": " separators and ASCII-only
// string escapes.
//
// List renders a sequence of values as a JSON array with one element per
// line:
//
//	[
//	 ["a"],
//	 ["b", "c"]
//	]
package jsonfmt
