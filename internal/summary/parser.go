// Package summary parses the generator's API summary file and renders
// it as a beautified Markdown report with badges, a table of contents
// and change tracking.
package summary

import (
	"regexp"
	"strconv"
	"strings"

	"endpoint-docgen/internal/model"
)

type section int

const (
	sectionNone section = iota
	sectionMethods
	sectionDeleted
	sectionAdded
	sectionModified
)

var (
	countRe       = regexp.MustCompile(`\d+`)
	methodGroupRe = regexp.MustCompile(`^(\w+):\s*(\d+)\s*endpoints?`)
	changeLineRe  = regexp.MustCompile(`^(GET|POST|PUT|DELETE|PATCH)\s+/`)
)

// ParseReport parses the raw summary text into an APIReport. The format
// is line oriented: count lines up top, then "Endpoints by method:" with
// per-method groups, then optional DELETED/ADDED/MODIFIED ENDPOINTS
// sections. Unknown lines are skipped, so a partially garbled summary
// still yields the parts that could be read.
func ParseReport(raw string) *model.APIReport {
	report := model.NewAPIReport()

	current := sectionNone
	currentMethod := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Total active endpoints:"):
			report.TotalEndpoints = firstInt(line)
		case strings.HasPrefix(line, "Added endpoints:"):
			report.AddedCount = firstInt(line)
		case strings.HasPrefix(line, "Modified endpoints:"):
			report.ModifiedCount = firstInt(line)
		case strings.HasPrefix(line, "Deleted endpoints:"):
			report.DeletedCount = firstInt(line)
		case strings.HasPrefix(line, "Base URL:"):
			report.BaseURL = strings.TrimSpace(strings.TrimPrefix(line, "Base URL:"))

		case line == "DELETED ENDPOINTS:":
			current, currentMethod = sectionDeleted, ""
		case line == "ADDED ENDPOINTS:":
			current, currentMethod = sectionAdded, ""
		case line == "MODIFIED ENDPOINTS:":
			current, currentMethod = sectionModified, ""
		case strings.HasPrefix(line, "Endpoints by method:"):
			current, currentMethod = sectionMethods, ""

		case current == sectionMethods:
			if m := methodGroupRe.FindStringSubmatch(line); m != nil {
				currentMethod = m[1]
			} else if strings.HasPrefix(line, "- /") && currentMethod != "" {
				report.AddEndpoint(currentMethod, strings.TrimSpace(line[2:]))
			}

		case current == sectionDeleted || current == sectionAdded || current == sectionModified:
			entry := changeEntry(line)
			if entry == "" {
				continue
			}
			switch current {
			case sectionDeleted:
				report.DeletedEndpoints = append(report.DeletedEndpoints, entry)
			case sectionAdded:
				report.AddedEndpoints = append(report.AddedEndpoints, entry)
			case sectionModified:
				report.ModifiedEndpoints = append(report.ModifiedEndpoints, entry)
			}
		}
	}

	return report
}

// changeEntry accepts "- METHOD /path" or bare "METHOD /path" lines.
func changeEntry(line string) string {
	if strings.HasPrefix(line, "- ") {
		return strings.TrimSpace(line[2:])
	}
	if changeLineRe.MatchString(line) {
		return line
	}
	return ""
}

func firstInt(line string) int {
	m := countRe.FindString(line)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
