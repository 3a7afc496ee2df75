package logparser

import "strings"

// scanState tracks the JSON scanner position relative to string literals.
type scanState int

const (
	stateNormal scanState = iota
	stateInString
	stateEscaped
)

// ExtractJSONObject returns the first syntactically complete JSON object
// following marker in text: it locates the first '{' after the marker and
// scans forward counting brace depth, ignoring braces inside string
// literals and honoring backslash escapes (an escape covers exactly one
// character and does not chain).
//
// It returns "" when the marker is absent, no '{' follows it, or the
// depth never returns to zero (truncated or malformed JSON). Callers are
// expected to fall back to a plain text slice in that case rather than
// fail the document.
func ExtractJSONObject(text, marker string) string {
	start := strings.Index(text, marker)
	if start == -1 {
		return ""
	}

	open := strings.Index(text[start:], "{")
	if open == -1 {
		return ""
	}
	open += start

	depth := 0
	state := stateNormal

	for i := open; i < len(text); i++ {
		c := text[i]

		switch state {
		case stateEscaped:
			// escape consumed for exactly one character
			state = stateInString

		case stateInString:
			switch c {
			case '\\':
				state = stateEscaped
			case '"':
				state = stateNormal
			}

		default:
			switch c {
			case '"':
				state = stateInString
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return text[open : i+1]
				}
			}
		}
	}

	return ""
}
