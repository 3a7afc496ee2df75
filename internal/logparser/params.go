package logparser

import (
	"fmt"
	"regexp"
	"strings"

	"endpoint-docgen/internal/model"
)

// paramField is the capture state while scanning one parameter block.
// Exactly one field is open at a time; a new label line flushes the
// previous field into the parameter under construction.
type paramField int

const (
	paramFieldNone paramField = iota
	paramFieldDescription
	paramFieldType
	paramFieldExample
)

var bulletRe = regexp.MustCompile(`•\s+`)

// ParseParameters parses a PATH PARAMETERS or QUERY PARAMETERS section
// span into an ordered parameter list. Each bullet introduces one
// parameter; label lines (Description:/Type:/Example:) open a field and
// unlabeled non-empty lines continue the open field, newline-joined.
// Duplicate names are dropped (first occurrence wins) with a warning.
func ParseParameters(section string) ([]model.Parameter, []string) {
	params := []model.Parameter{}
	var warnings []string

	if strings.TrimSpace(section) == "" {
		return params, nil
	}

	seen := make(map[string]bool)
	for _, block := range bulletRe.Split(section, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		param := parseParameterBlock(block)
		if param.Name == "" {
			continue
		}
		if seen[param.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate parameter %q dropped", param.Name))
			continue
		}
		seen[param.Name] = true
		params = append(params, param)
	}

	return params, warnings
}

func parseParameterBlock(block string) model.Parameter {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	var param model.Parameter
	param.Name, param.Required = parseParamHeading(strings.TrimSpace(lines[0]))

	state := paramFieldNone
	var content []string

	flush := func() {
		value := strings.TrimSpace(strings.Join(content, "\n"))
		switch state {
		case paramFieldDescription:
			param.Description = value
		case paramFieldType:
			param.Type = value
		case paramFieldExample:
			param.Example = value
		}
	}

	for _, line := range lines[1:] {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, "Description:"):
			flush()
			state = paramFieldDescription
			content = []string{strings.TrimSpace(strings.TrimPrefix(stripped, "Description:"))}
		case strings.HasPrefix(stripped, "Type:"):
			flush()
			state = paramFieldType
			content = []string{strings.TrimSpace(strings.TrimPrefix(stripped, "Type:"))}
		case strings.HasPrefix(stripped, "Example:"):
			flush()
			state = paramFieldExample
			content = []string{strings.TrimSpace(strings.TrimPrefix(stripped, "Example:"))}
		case state != paramFieldNone && stripped != "":
			// continuation of the open field
			content = append(content, stripped)
		}
	}
	flush()

	return param
}

// parseParamHeading parses the bullet's first line: `name (REQUIRED)` or
// `name (optional)`. A heading without a parenthetical defaults to
// optional.
func parseParamHeading(first string) (name string, required bool) {
	open := strings.Index(first, "(")
	if open == -1 {
		return strings.TrimSpace(first), false
	}

	name = strings.TrimSpace(first[:open])
	rest := first[open+1:]
	if close := strings.Index(rest, ")"); close != -1 {
		rest = rest[:close]
	}
	required = strings.EqualFold(strings.TrimSpace(rest), "REQUIRED")
	return name, required
}
