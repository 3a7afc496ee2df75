package logparser

import (
	"fmt"
	"regexp"
	"strings"

	"endpoint-docgen/internal/model"
)

const (
	markerResponseStructure = "Response Structure:"
	markerExampleResponse   = "Example Response:"
	markerNoResponseBody    = "No response body"
)

var (
	statusRe = regexp.MustCompile(`Status (\d+):`)

	// fallbackBoundaryRe approximates "next heading": a blank line
	// followed by a capital letter. Heuristic only; used when brace
	// extraction failed and flagged with a warning (it can truncate a
	// legitimate multi-paragraph example).
	fallbackBoundaryRe = regexp.MustCompile(`\n\n[A-Z]`)
)

// ParseResponses parses a RESPONSES section span into one entry per
// status code. A block containing the literal "No response body" keeps
// that phrase as its description and carries no content. Duplicate
// status codes are dropped (first occurrence wins) with a warning.
func ParseResponses(section string) ([]model.ResponseEntry, []string) {
	responses := []model.ResponseEntry{}
	var warnings []string

	if strings.TrimSpace(section) == "" {
		return responses, nil
	}

	seen := make(map[string]bool)
	matches := statusRe.FindAllStringSubmatchIndex(section, -1)
	for i, m := range matches {
		status := section[m[2]:m[3]]

		blockStart := m[1]
		blockEnd := len(section)
		if i+1 < len(matches) {
			blockEnd = matches[i+1][0]
		}
		block := section[blockStart:blockEnd]

		if seen[status] {
			warnings = append(warnings, fmt.Sprintf("duplicate response status %s dropped", status))
			continue
		}
		seen[status] = true

		entry := model.ResponseEntry{Status: status}

		if strings.Contains(block, markerNoResponseBody) {
			entry.Description = markerNoResponseBody
			responses = append(responses, entry)
			continue
		}

		entry.Description = firstLine(block)

		if m := contentTypeRe.FindStringSubmatch(block); m != nil {
			entry.ContentType = strings.TrimSpace(m[1])
		}

		if idx := strings.Index(block, markerResponseStructure); idx != -1 {
			schema := block[idx+len(markerResponseStructure):]
			if end := strings.Index(schema, markerExampleResponse); end != -1 {
				schema = schema[:end]
			}
			entry.Schema = strings.TrimSpace(schema)
		}

		if strings.Contains(block, markerExampleResponse) {
			example, usedFallback := extractResponseExample(block)
			entry.Example = example
			if usedFallback {
				warnings = append(warnings, fmt.Sprintf("response example for status %s recovered by fallback slice", status))
			}
		}

		responses = append(responses, entry)
	}

	return responses, warnings
}

// extractResponseExample recovers the example payload of one status
// block. Brace-balanced extraction first; on failure, slice up to the
// next blank-line-plus-capital boundary or the end of the block.
func extractResponseExample(block string) (example string, usedFallback bool) {
	if json := ExtractJSONObject(block, markerExampleResponse); json != "" {
		return json, false
	}

	idx := strings.Index(block, markerExampleResponse)
	if idx == -1 {
		return "", false
	}
	rest := strings.TrimSpace(block[idx+len(markerExampleResponse):])

	if loc := fallbackBoundaryRe.FindStringIndex(rest); loc != nil {
		rest = strings.TrimSpace(rest[:loc[0]])
	}
	if rest == "" || rest == markerNoExample {
		return "", false
	}
	return rest, true
}

// firstLine returns the trimmed first non-empty text of the block's
// opening line: the status description the generator writes after
// "Status <code>:".
func firstLine(block string) string {
	line := block
	if idx := strings.IndexByte(block, '\n'); idx != -1 {
		line = block[:idx]
	}
	return strings.TrimSpace(line)
}
