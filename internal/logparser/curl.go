package logparser

import (
	"regexp"
	"strings"

	"endpoint-docgen/internal/model"
)

// BasicCurlTitle is the title given to the unnamed basic command block.
const BasicCurlTitle = "Basic Command"

// advancedTitleRe matches an example title comment, `# <title>:`. The
// greedy group reaches the last colon on the line so titles containing
// colons stay intact.
var advancedTitleRe = regexp.MustCompile(`#\s*(.+):`)

// ParseCurlExamples assembles the record's curl examples: the basic
// command section verbatim, then the titled blocks of the advanced and
// content-type specific sections. Command text is kept verbatim apart
// from outer whitespace, including backslash line continuations.
func ParseCurlExamples(basic, advanced, contentSpecific string) []model.CurlExample {
	examples := []model.CurlExample{}

	if cmd := strings.TrimSpace(basic); cmd != "" {
		examples = append(examples, model.CurlExample{
			Title:   BasicCurlTitle,
			Command: cmd,
		})
	}

	examples = append(examples, splitTitledExamples(advanced)...)
	examples = append(examples, splitTitledExamples(contentSpecific)...)

	return examples
}

// splitTitledExamples splits a span on `# <title>:` comment lines; each
// title owns everything up to the next title or the end of the span.
func splitTitledExamples(section string) []model.CurlExample {
	examples := []model.CurlExample{}
	if strings.TrimSpace(section) == "" {
		return examples
	}

	matches := advancedTitleRe.FindAllStringSubmatchIndex(section, -1)
	for i, m := range matches {
		title := strings.TrimSpace(section[m[2]:m[3]])

		end := len(section)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		command := strings.TrimSpace(section[m[1]:end])

		if title == "" || command == "" {
			continue
		}
		examples = append(examples, model.CurlExample{
			Title:   title,
			Command: command,
		})
	}

	return examples
}
