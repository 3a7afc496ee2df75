package model

import "strings"

// EndpointRecord is the structured representation of one parsed endpoint
// log file. It is assembled in a single parsing pass and is never mutated
// afterwards; renderers and exporters only read it.
type EndpointRecord struct {
	// Source file name (base name, e.g. "GET__users.txt")
	Filename string

	// HTTP method in uppercase (GET, POST, ...). Empty when the
	// endpoint header line was missing or malformed.
	Method string

	// URL template, may contain {param} placeholders
	Path string

	// One-line summary from the header block
	Summary string

	// Free-form description, may span multiple lines
	Description string

	// Ordered tag list from the "Tags:" header line
	Tags []string

	// Deprecation marker from the header block
	Deprecated bool

	// Parameters in source order
	PathParams  []Parameter
	QueryParams []Parameter

	// Request body variants, one per documented content type
	RequestBodies []RequestBodyVariant

	// Responses in source order, one per status code
	Responses []ResponseEntry

	// Curl examples: the basic command first, then advanced examples
	CurlExamples []CurlExample

	// Data-quality notes collected during parsing (malformed header,
	// duplicates dropped, extraction fallback used). Surfaced by the
	// batch runner as warnings, never as failures.
	Warnings []string
}

// NewEndpointRecord creates an empty record for the given source file.
func NewEndpointRecord(filename string) *EndpointRecord {
	return &EndpointRecord{
		Filename:      filename,
		Tags:          []string{},
		PathParams:    []Parameter{},
		QueryParams:   []Parameter{},
		RequestBodies: []RequestBodyVariant{},
		Responses:     []ResponseEntry{},
		CurlExamples:  []CurlExample{},
	}
}

// Endpoint returns the "METHOD /path" header line, or "" when the record
// has no usable header.
func (r *EndpointRecord) Endpoint() string {
	if r.Method == "" || r.Path == "" {
		return ""
	}
	return r.Method + " " + r.Path
}

// IsMalformed reports whether the header line could not be recovered.
func (r *EndpointRecord) IsMalformed() bool {
	return r.Method == "" || r.Path == ""
}

// AddWarning records a data-quality note.
func (r *EndpointRecord) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Parameter is one path or query parameter entry.
type Parameter struct {
	Name        string
	Required    bool
	Description string // may be multi-line, order preserved
	Type        string
	Example     string
}

// RequestBodyVariant is one content-type alternative of the request body.
type RequestBodyVariant struct {
	ContentType string
	Required    bool
	Description string
	Fields      []Field
	Example     string // raw JSON text, may be empty
}

// Field is one entry of a request-body field structure. Top-level fields
// come from unindented source lines; indented lines become the nested
// description of the preceding field rather than fields of their own.
type Field struct {
	Name        string
	Type        string // includes synthesized "array of <T>" / "array of objects"
	Format      string
	Required    bool
	Description string
}

// ResponseEntry is one documented response for a single status code.
type ResponseEntry struct {
	Status      string // e.g. "200", "404"
	Description string
	ContentType string
	Schema      string // free-form structural dump
	Example     string // raw JSON text
}

// HasBody reports whether the response documents a body.
func (re *ResponseEntry) HasBody() bool {
	return re.ContentType != "" || re.Example != "" || re.Schema != ""
}

// CurlExample is a titled curl command block. Command text is kept
// verbatim, including line continuations.
type CurlExample struct {
	Title   string
	Command string
}

// SplitTags parses a comma-separated tag line into an ordered list.
func SplitTags(line string) []string {
	tags := []string{}
	for _, t := range strings.Split(line, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
