package logparser

import (
	"fmt"
	"regexp"
	"strings"

	"endpoint-docgen/internal/model"
)

const (
	markerFieldStructure = "Field Structure:"
	markerExampleJSON    = "Example JSON:"
	markerNoExample      = "No example available"
)

var (
	bodyDescRe     = regexp.MustCompile(`Description:[ \t]*(.*)`)
	bodyRequiredRe = regexp.MustCompile(`Required:[ \t]*(.*)`)
	contentTypeRe  = regexp.MustCompile(`Content-Type:[ \t]*(.*)`)
)

// ParseRequestBody parses a REQUEST BODY section span into one variant
// per documented content type. The description/required pair at the top
// of the section is shared across all variants. Within each content-type
// sub-span, the field structure is bounded by "Field Structure:" and
// "Example JSON:", and the example payload is recovered by
// brace-balanced extraction with a plain-slice fallback.
func ParseRequestBody(section string) ([]model.RequestBodyVariant, []string) {
	variants := []model.RequestBodyVariant{}
	var warnings []string

	if strings.TrimSpace(section) == "" {
		return variants, nil
	}

	baseDescription := ""
	if m := bodyDescRe.FindStringSubmatch(section); m != nil {
		baseDescription = strings.TrimSpace(m[1])
	}
	baseRequired := false
	if m := bodyRequiredRe.FindStringSubmatch(section); m != nil {
		baseRequired = strings.EqualFold(strings.TrimSpace(m[1]), "yes")
	}

	seen := make(map[string]bool)
	matches := contentTypeRe.FindAllStringSubmatchIndex(section, -1)
	for i, m := range matches {
		contentType := strings.TrimSpace(section[m[2]:m[3]])
		if contentType == "" {
			continue
		}

		spanStart := m[1]
		spanEnd := len(section)
		if i+1 < len(matches) {
			spanEnd = matches[i+1][0]
		}
		span := section[spanStart:spanEnd]

		if seen[contentType] {
			warnings = append(warnings, fmt.Sprintf("duplicate request body content type %q dropped", contentType))
			continue
		}
		seen[contentType] = true

		variant := model.RequestBodyVariant{
			ContentType: contentType,
			Required:    baseRequired,
			Description: baseDescription,
			Fields:      []model.Field{},
		}

		if idx := strings.Index(span, markerFieldStructure); idx != -1 {
			fieldSpan := span[idx+len(markerFieldStructure):]
			if end := strings.Index(fieldSpan, markerExampleJSON); end != -1 {
				fieldSpan = fieldSpan[:end]
			}
			variant.Fields = ParseFieldStructure(fieldSpan)
		}

		if strings.Contains(span, markerExampleJSON) {
			example, usedFallback := extractExample(span, markerExampleJSON)
			variant.Example = example
			if usedFallback {
				warnings = append(warnings, fmt.Sprintf("request body example for %q recovered by fallback slice", contentType))
			}
		}

		variants = append(variants, variant)
	}

	return variants, warnings
}

// extractExample recovers the example payload after marker. The primary
// path is brace-balanced extraction; when that fails the remainder of
// the span is taken verbatim. The generator's "No example available"
// placeholder maps to an empty example.
func extractExample(span, marker string) (example string, usedFallback bool) {
	if json := ExtractJSONObject(span, marker); json != "" {
		return json, false
	}

	idx := strings.Index(span, marker)
	if idx == -1 {
		return "", false
	}
	rest := strings.TrimSpace(span[idx+len(marker):])
	if rest == "" || rest == markerNoExample {
		return "", false
	}
	return rest, true
}

var fieldMetaFormatRe = regexp.MustCompile(`\(format: ([^)]+)\)`)

// ParseFieldStructure parses the field listing of one content-type
// variant. A line with no leading indentation that contains a colon
// starts a new field; indented lines continue the current field's
// description (nested object details stay attached to their parent
// instead of becoming phantom top-level fields).
func ParseFieldStructure(fieldText string) []model.Field {
	fields := []model.Field{}
	var current *model.Field

	flush := func() {
		if current != nil {
			fields = append(fields, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(fieldText, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		indented := strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
		line := strings.TrimSpace(raw)

		if !indented && strings.Contains(line, ":") {
			flush()

			name, info, _ := strings.Cut(line, ":")
			field := model.Field{
				Name: strings.TrimSpace(name),
			}
			parseFieldInfo(&field, strings.TrimSpace(info))
			current = &field
			continue
		}

		if current != nil {
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
		}
	}
	flush()

	return fields
}

// parseFieldInfo parses the text after the field name's colon, e.g.
// "string (format: uuid) (required)" or "array of objects (optional)".
func parseFieldInfo(field *model.Field, info string) {
	if info == "" {
		return
	}

	if open := strings.Index(info, "("); open != -1 {
		field.Type = strings.TrimSpace(info[:open])
	} else {
		field.Type = info
	}

	field.Required = strings.Contains(info, "(required)")

	if m := fieldMetaFormatRe.FindStringSubmatch(info); m != nil {
		field.Format = strings.TrimSpace(m[1])
	}
}
