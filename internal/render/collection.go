package render

import (
	"fmt"
	"regexp"
	"strings"

	"endpoint-docgen/internal/model"
)

var anchorStripRe = regexp.MustCompile(`[^\w\s-]`)

// Anchor derives the GitHub-style anchor for a heading: lowercase,
// punctuation stripped, spaces to hyphens.
func Anchor(heading string) string {
	cleaned := anchorStripRe.ReplaceAllString(strings.ToLower(heading), "")
	return strings.ReplaceAll(cleaned, " ", "-")
}

// Collection renders the combined documentation file: a numbered table
// of contents linking to one section per endpoint. Records keep their
// given order; the caller decides sorting.
func Collection(title string, records []*model.EndpointRecord) string {
	if title == "" {
		title = "API Documentation"
	}

	var md []string
	md = append(md, "# "+title+"\n")
	md = append(md, "## Table of Contents\n")

	for i, rec := range records {
		heading := collectionHeading(rec)
		md = append(md, fmt.Sprintf("%d. [%s](#%s)", i+1, heading, Anchor(heading)))
	}

	md = append(md, "\n---\n")

	for _, rec := range records {
		md = append(md, collectionSection(rec))
	}

	return strings.Join(md, "\n")
}

func collectionHeading(rec *model.EndpointRecord) string {
	if heading := rec.Endpoint(); heading != "" {
		return heading
	}
	return rec.Filename
}

// collectionSection renders one endpoint as a second-level section.
// Same content as the standalone document, one heading level down, with
// a rule after each endpoint.
func collectionSection(rec *model.EndpointRecord) string {
	var sections []string

	sections = append(sections, "## "+collectionHeading(rec))
	sections = append(sections, strings.Join(overviewTable(rec)[2:], "\n"))

	if rec.Description != "" {
		sections = append(sections, "\n### Description\n"+rec.Description)
	}

	if len(rec.PathParams) > 0 {
		sections = append(sections, "\n### Path Parameters")
		sections = append(sections, ParametersTable(rec.PathParams))
	}

	if len(rec.QueryParams) > 0 {
		sections = append(sections, "\n### Query Parameters")
		sections = append(sections, ParametersTable(rec.QueryParams))
	}

	if len(rec.RequestBodies) > 0 {
		sections = append(sections, "\n### Request Body")
		for _, body := range rec.RequestBodies {
			sections = append(sections, "\n"+requestBodySection(body))
		}
	}

	if len(rec.Responses) > 0 {
		sections = append(sections, "\n### Responses")
		for _, resp := range rec.Responses {
			sections = append(sections, responseSection(resp))
		}
	}

	if len(rec.CurlExamples) > 0 {
		sections = append(sections, "\n### cURL Examples")
		for _, example := range rec.CurlExamples {
			sections = append(sections, "\n#### "+example.Title)
			sections = append(sections, fmt.Sprintf("```bash\n%s\n```", example.Command))
		}
	}

	sections = append(sections, "\n---\n")

	return strings.Join(sections, "\n")
}
