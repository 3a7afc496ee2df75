// Package logparser recovers structured endpoint records from the
// loosely ordered plain-text documentation files the upstream generator
// emits. The document is first partitioned into named sections, then
// each section is parsed independently; missing sections and malformed
// fragments degrade to empty values instead of failing the document.
package logparser

import "endpoint-docgen/internal/model"

// Parse parses one endpoint log document into an EndpointRecord. It is
// stateless and never fails: the result may be sparse, and data-quality
// problems (malformed header, duplicates, extraction fallbacks) are
// recorded as warnings on the record for the caller to surface.
func Parse(filename, text string) *model.EndpointRecord {
	rec := model.NewEndpointRecord(filename)

	sections := Split(text)

	ParseHeader(sections.Header, rec)
	if rec.IsMalformed() {
		rec.Method = ""
		rec.Path = ""
		rec.AddWarning("endpoint header missing or malformed")
	}

	var warns []string

	rec.PathParams, warns = ParseParameters(sections.Get(SectionPathParams))
	mergeWarnings(rec, "path parameter", warns)

	rec.QueryParams, warns = ParseParameters(sections.Get(SectionQueryParams))
	mergeWarnings(rec, "query parameter", warns)

	rec.RequestBodies, warns = ParseRequestBody(sections.Get(SectionRequestBody))
	mergeWarnings(rec, "request body", warns)

	rec.Responses, warns = ParseResponses(sections.Get(SectionResponses))
	mergeWarnings(rec, "response", warns)

	rec.CurlExamples = ParseCurlExamples(
		sections.Get(SectionBasicCurl),
		sections.Get(SectionAdvancedCurl),
		sections.Get(SectionContentCurl),
	)

	return rec
}

func mergeWarnings(rec *model.EndpointRecord, scope string, warns []string) {
	for _, w := range warns {
		rec.AddWarning(scope + ": " + w)
	}
}
