// Package parser turns the two accepted textual net dialects into the
// coverability package's positional Input. Parse dispatches on the first
// non-whitespace byte of the input: '{' selects the structured (JSON-like)
// format, anything else selects the line-oriented graphical-editor format.
package parser

import (
	"bytes"

	"github.com/pflow-xyz/petri-coverability/coverability"
)

// Parse detects the input dialect and delegates to ParseStructured or
// ParseEditor.
func Parse(data []byte) (coverability.Input, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseStructured(data)
	}
	return ParseEditor(string(data))
}
