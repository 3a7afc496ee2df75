package logparser

import (
	"regexp"
	"sort"
	"strings"

	"endpoint-docgen/internal/model"
)

// SectionName identifies one anchored section of an endpoint log file.
// The value is the anchor title exactly as it appears in the source.
type SectionName string

const (
	SectionPathParams   SectionName = "PATH PARAMETERS:"
	SectionQueryParams  SectionName = "QUERY PARAMETERS:"
	SectionRequestBody  SectionName = "REQUEST BODY:"
	SectionResponses    SectionName = "RESPONSES:"
	SectionBasicCurl    SectionName = "BASIC CURL COMMAND:"
	SectionAdvancedCurl SectionName = "ADVANCED USAGE EXAMPLES:"
	SectionContentCurl  SectionName = "CONTENT-TYPE SPECIFIC EXAMPLES:"
)

// sectionCatalog lists every recognized anchor. Order does not affect
// splitting (spans are bounded by document position), but every anchor
// must be present here or a section would swallow its successor.
var sectionCatalog = []SectionName{
	SectionPathParams,
	SectionQueryParams,
	SectionRequestBody,
	SectionResponses,
	SectionBasicCurl,
	SectionAdvancedCurl,
	SectionContentCurl,
}

// Sections holds the partitioned document: the unanchored header block
// and the raw span of each anchored section that is present. Absent
// sections are simply missing from ByName.
type Sections struct {
	Header string
	ByName map[SectionName]string
}

// Get returns a section span, or "" when the section is absent.
func (s Sections) Get(name SectionName) string {
	return s.ByName[name]
}

// Split partitions a raw document into the header block and named
// sections. Each anchor is a title at the start of a line followed by a
// dash underline; a section's span runs from the end of its underline to
// the next recognized anchor or end of document. This keeps boundaries
// non-greedy: "RESPONSES:" can never swallow a later curl block because
// that block's anchor terminates it.
func Split(text string) Sections {
	type anchorMark struct {
		name      SectionName
		start     int // index of the anchor title
		bodyStart int // index just past the underline
	}

	var marks []anchorMark
	for _, name := range sectionCatalog {
		idx := indexAtLineStart(text, string(name))
		if idx == -1 {
			continue
		}
		marks = append(marks, anchorMark{
			name:      name,
			start:     idx,
			bodyStart: skipUnderline(text, idx+len(name)),
		})
	}

	sort.Slice(marks, func(i, j int) bool { return marks[i].start < marks[j].start })

	sections := Sections{ByName: make(map[SectionName]string)}

	headerEnd := len(text)
	if len(marks) > 0 {
		headerEnd = marks[0].start
	}
	sections.Header = text[:headerEnd]

	for i, m := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		if m.bodyStart > end {
			// underline ran into the next anchor; empty section
			sections.ByName[m.name] = ""
			continue
		}
		sections.ByName[m.name] = text[m.bodyStart:end]
	}

	return sections
}

// indexAtLineStart finds the first occurrence of marker that begins a
// line. Markers appearing mid-line (e.g. quoted inside a curl command)
// must not split the document.
func indexAtLineStart(text, marker string) int {
	offset := 0
	for {
		idx := strings.Index(text[offset:], marker)
		if idx == -1 {
			return -1
		}
		idx += offset
		if idx == 0 || text[idx-1] == '\n' {
			return idx
		}
		offset = idx + len(marker)
	}
}

// skipUnderline advances past the dash underline that follows an anchor
// title. Tolerates missing underlines and varying widths.
func skipUnderline(text string, pos int) int {
	i := pos
	// end of the title line
	for i < len(text) && (text[i] == ' ' || text[i] == '\r') {
		i++
	}
	if i < len(text) && text[i] == '\n' {
		i++
	}

	// a line consisting of dashes
	j := i
	dashes := 0
	for j < len(text) && text[j] == '-' {
		j++
		dashes++
	}
	if dashes < 3 {
		return i // no underline, section body starts right away
	}
	for j < len(text) && (text[j] == ' ' || text[j] == '\r') {
		j++
	}
	if j < len(text) && text[j] == '\n' {
		j++
	}
	return j
}

var (
	endpointLineRe = regexp.MustCompile(`ENDPOINT:\s+(\S+)\s+(\S.*)`)
	summaryLineRe  = regexp.MustCompile(`Summary:[ \t]*(.*)`)
	tagsLineRe     = regexp.MustCompile(`Tags:[ \t]*(.*)`)
)

// deprecatedMarker is the flag line the generator emits for deprecated
// endpoints. It is matched at line start with its glyph prefix so that
// the bare word "DEPRECATED" inside a description does not flag the
// endpoint.
const deprecatedMarker = "⚠️  DEPRECATED"

// ParseHeader extracts the header block fields (method, path, summary,
// description, tags, deprecated flag) into rec. The header has no
// enclosing anchor pair, so it is matched with line-level patterns on
// the span preceding the first section anchor.
func ParseHeader(header string, rec *model.EndpointRecord) {
	if m := endpointLineRe.FindStringSubmatch(header); m != nil {
		rec.Method = strings.ToUpper(strings.TrimSpace(m[1]))
		rec.Path = strings.TrimSpace(m[2])
	}

	if m := summaryLineRe.FindStringSubmatch(header); m != nil {
		rec.Summary = strings.TrimSpace(m[1])
	}

	if m := tagsLineRe.FindStringSubmatch(header); m != nil {
		rec.Tags = model.SplitTags(m[1])
	}

	rec.Deprecated = indexAtLineStart(header, deprecatedMarker) != -1

	rec.Description = parseHeaderDescription(header)
}

// parseHeaderDescription captures the multi-line description: everything
// after the "Description:" label up to the Tags line, the deprecation
// marker, or the end of the header block.
func parseHeaderDescription(header string) string {
	idx := strings.Index(header, "Description:")
	if idx == -1 {
		return ""
	}
	body := header[idx+len("Description:"):]

	end := len(body)
	if i := strings.Index(body, "Tags:"); i != -1 && i < end {
		end = i
	}
	// the marker line ends the description, but only at line start; the
	// glyph or the word can legitimately occur inside description prose
	if i := indexAtLineStart(body, deprecatedMarker); i != -1 && i < end {
		end = i
	}

	return strings.TrimSpace(body[:end])
}
