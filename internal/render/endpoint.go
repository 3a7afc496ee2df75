// Package render turns parsed endpoint records into Markdown. All
// functions are pure string builders; they never touch the filesystem
// and render the same input to the same output byte for byte.
package render

import (
	"fmt"
	"strings"

	"endpoint-docgen/internal/model"
)

// Placeholders the upstream generator writes when a field has no
// content. They are treated as absent, not rendered.
const (
	noSummaryPlaceholder     = "No summary available"
	noDescriptionPlaceholder = "No description available"
)

// Endpoint renders the standalone Markdown document for one endpoint.
// A record with no usable header falls back to the source file name for
// the title so every input still produces a readable document.
func Endpoint(rec *model.EndpointRecord) string {
	var sections []string

	title := rec.Endpoint()
	if title == "" {
		title = rec.Filename
	}
	sections = append(sections, "# "+title, "")

	sections = append(sections, overviewTable(rec)...)
	sections = append(sections, "")

	if rec.Description != "" {
		sections = append(sections, "## Description", "", rec.Description, "")
	}

	if len(rec.PathParams) > 0 {
		sections = append(sections, "## Path Parameters", "", ParametersTable(rec.PathParams), "")
	}

	if len(rec.QueryParams) > 0 {
		sections = append(sections, "## Query Parameters", "", ParametersTable(rec.QueryParams), "")
	}

	if len(rec.RequestBodies) > 0 {
		sections = append(sections, "## Request Body", "")
		for _, body := range rec.RequestBodies {
			sections = append(sections, requestBodySection(body), "")
		}
	}

	if len(rec.Responses) > 0 {
		sections = append(sections, "## Responses", "")
		for _, resp := range rec.Responses {
			sections = append(sections, responseSection(resp), "")
		}
	}

	if len(rec.CurlExamples) > 0 {
		sections = append(sections, "## cURL Examples", "")
		for _, example := range rec.CurlExamples {
			sections = append(sections, "### "+example.Title, "")
			sections = append(sections, fmt.Sprintf("```bash\n%s\n```", example.Command), "")
		}
	}

	return strings.Join(sections, "\n")
}

func overviewTable(rec *model.EndpointRecord) []string {
	rows := []string{
		"## Overview",
		"",
		"| Property | Value |",
		"|----------|-------|",
	}
	if rec.Method != "" {
		rows = append(rows, fmt.Sprintf("| **Method** | `%s` |", rec.Method))
	}
	if rec.Path != "" {
		rows = append(rows, fmt.Sprintf("| **Path** | `%s` |", rec.Path))
	}
	if len(rec.Tags) > 0 {
		rows = append(rows, fmt.Sprintf("| **Tags** | %s |", strings.Join(rec.Tags, ", ")))
	}
	if rec.Summary != "" && rec.Summary != noSummaryPlaceholder {
		rows = append(rows, fmt.Sprintf("| **Summary** | %s |", escapeCell(rec.Summary)))
	}
	if rec.Deprecated {
		rows = append(rows, "| **Deprecated** | ⚠️ Yes |")
	}
	return rows
}

// ParametersTable renders the Name/Type/Required/Description/Example
// table for a parameter list. Multi-line descriptions are folded into a
// single table cell with <br> breaks, and option lines written as
// "* `value` - label" become bulleted entries.
func ParametersTable(params []model.Parameter) string {
	if len(params) == 0 {
		return ""
	}

	table := []string{
		"| Name | Type | Required | Description | Example |",
		"|------|------|----------|-------------|---------|",
	}

	for _, p := range params {
		description := p.Description
		if description == "" {
			description = noDescriptionPlaceholder
		}
		description = escapeCell(foldCellLines(description))
		example := escapeCell(p.Example)

		table = append(table, fmt.Sprintf("| `%s` | %s | %s | %s | %s |",
			p.Name, p.Type, requiredMark(p.Required), description, example))
	}

	return strings.Join(table, "\n")
}

func requestBodySection(body model.RequestBodyVariant) string {
	sections := []string{
		"### " + body.ContentType,
		"",
		"| Property | Value |",
		"|----------|-------|",
	}

	required := "No"
	if body.Required {
		required = "Yes"
	}
	sections = append(sections, fmt.Sprintf("| **Required** | %s |", required))
	if body.Description != "" && body.Description != noDescriptionPlaceholder {
		sections = append(sections, fmt.Sprintf("| **Description** | %s |", escapeCell(body.Description)))
	}
	sections = append(sections, "")

	if len(body.Fields) > 0 {
		sections = append(sections, "**Field Structure:**", "", fieldsTable(body.Fields), "")
	}

	if body.Example != "" {
		sections = append(sections, "**Example:**", "", fmt.Sprintf("```json\n%s\n```", body.Example), "")
	}

	return strings.Join(sections, "\n")
}

func fieldsTable(fields []model.Field) string {
	table := []string{
		"| Field | Type | Format | Required | Description |",
		"|-------|------|--------|----------|-------------|",
	}

	for _, f := range fields {
		fieldType := f.Type
		switch {
		case strings.HasPrefix(fieldType, "array of"):
			fieldType = "`" + fieldType + "`"
		case fieldType == "unknown":
			fieldType = "object"
		}

		table = append(table, fmt.Sprintf("| `%s` | %s | %s | %s | %s |",
			f.Name, fieldType, f.Format, requiredMark(f.Required), escapeCell(f.Description)))
	}

	return strings.Join(table, "\n")
}

func responseSection(resp model.ResponseEntry) string {
	sections := []string{"#### Status " + resp.Status}

	if resp.Description != "" {
		sections = append(sections, resp.Description)
	}
	if resp.ContentType != "" {
		sections = append(sections, fmt.Sprintf("**Content-Type:** `%s`", resp.ContentType))
	}
	if resp.Schema != "" {
		sections = append(sections, "**Response Schema:**")
		sections = append(sections, fmt.Sprintf("```\n%s\n```", resp.Schema))
	}
	if resp.Example != "" {
		sections = append(sections, "**Example Response:**")
		sections = append(sections, fmt.Sprintf("```json\n%s\n```", resp.Example))
	}

	return strings.Join(sections, "\n")
}

// foldCellLines flattens a multi-line value into one table-cell line.
// Option lines ("* item") become "<br>• item"; other continuation lines
// get a plain <br>.
func foldCellLines(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}

	var parts []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "* "):
			parts = append(parts, "<br>• "+line[2:])
		case strings.HasPrefix(line, "*"):
			parts = append(parts, "<br>• "+strings.TrimSpace(line[1:]))
		case len(parts) == 0:
			parts = append(parts, line)
		default:
			parts = append(parts, "<br>"+line)
		}
	}

	return strings.Join(parts, "")
}

// escapeCell escapes pipe characters so cell content cannot break the
// table layout.
func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}

func requiredMark(required bool) string {
	if required {
		return "✓"
	}
	return ""
}
