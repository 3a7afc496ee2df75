// Package openapi reconstructs an OpenAPI 3.0 document from parsed
// endpoint records. The reconstruction is lossy in the same places the
// source logs are: schemas come from the documented field structures
// and examples are carried over verbatim when they are valid JSON.
package openapi

import (
	"encoding/json"
	"os"
	"strings"

	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/model"
)

// OpenAPI Root Object
type OpenAPI struct {
	OpenAPI string              `json:"openapi"`
	Info    Info                `json:"info"`
	Paths   map[string]PathItem `json:"paths"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type PathItem map[string]Operation // Key is method: "get", "post", etc.

type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Deprecated  bool                `json:"deprecated,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"` // "query" or "path"
	Required    bool   `json:"required,omitempty"`
	Schema      Schema `json:"schema"`
	Description string `json:"description,omitempty"`
	Example     string `json:"example,omitempty"`
}

type RequestBody struct {
	Description string               `json:"description,omitempty"`
	Content     map[string]MediaType `json:"content"`
	Required    bool                 `json:"required,omitempty"`
}

type MediaType struct {
	Schema  interface{}     `json:"schema,omitempty"`
	Example json.RawMessage `json:"example,omitempty"`
}

type Schema struct {
	Type string `json:"type"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// OpenAPIExporter constructs the OpenAPI spec
type OpenAPIExporter struct {
	// Stateless
}

func NewOpenAPIExporter() *OpenAPIExporter {
	return &OpenAPIExporter{}
}

func (b *OpenAPIExporter) Export(records []*model.EndpointRecord, cfg *config.Config) error {
	spec := b.Build(records, cfg.Report.Title)

	file, err := os.Create(cfg.CollectionPath(".openapi.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(spec)
}

// Build assembles the OpenAPI document. Records without a usable header are
// skipped; they have no path to hang an operation on.
func (b *OpenAPIExporter) Build(records []*model.EndpointRecord, title string) *OpenAPI {
	if title == "" {
		title = "API Documentation"
	}

	spec := &OpenAPI{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:   title,
			Version: "1.0.0",
		},
		Paths: make(map[string]PathItem),
	}

	for _, rec := range records {
		b.processRecord(spec, rec)
	}

	return spec
}

func (b *OpenAPIExporter) processRecord(spec *OpenAPI, rec *model.EndpointRecord) {
	if rec.IsMalformed() {
		return
	}

	fullPath := rec.Path
	if !strings.HasPrefix(fullPath, "/") {
		fullPath = "/" + fullPath
	}
	method := strings.ToLower(rec.Method)

	if _, ok := spec.Paths[fullPath]; !ok {
		spec.Paths[fullPath] = make(PathItem)
	}

	op := Operation{
		Summary:     rec.Summary,
		Description: rec.Description,
		Tags:        rec.Tags,
		Deprecated:  rec.Deprecated,
		Responses:   make(map[string]Response),
	}

	for _, p := range rec.PathParams {
		op.Parameters = append(op.Parameters, b.buildParameter(p, "path"))
	}
	for _, p := range rec.QueryParams {
		op.Parameters = append(op.Parameters, b.buildParameter(p, "query"))
	}

	if len(rec.RequestBodies) > 0 {
		op.RequestBody = b.buildRequestBody(rec.RequestBodies)
	}

	for _, resp := range rec.Responses {
		op.Responses[resp.Status] = b.buildResponse(resp)
	}
	if len(op.Responses) == 0 {
		op.Responses["200"] = Response{Description: "Successful response"}
	}

	spec.Paths[fullPath][method] = op
}

func (b *OpenAPIExporter) buildParameter(p model.Parameter, in string) Parameter {
	required := p.Required
	if in == "path" {
		// Path parameters are always required in OpenAPI
		required = true
	}
	return Parameter{
		Name:        p.Name,
		In:          in,
		Required:    required,
		Schema:      Schema{Type: b.mapType(p.Type)},
		Description: p.Description,
		Example:     p.Example,
	}
}

func (b *OpenAPIExporter) buildRequestBody(variants []model.RequestBodyVariant) *RequestBody {
	body := &RequestBody{
		Content: make(map[string]MediaType),
	}

	for _, variant := range variants {
		media := MediaType{}
		if len(variant.Fields) > 0 {
			media.Schema = b.buildObjectSchema(variant.Fields)
		}
		if raw := validJSON(variant.Example); raw != nil {
			media.Example = raw
		}
		body.Content[variant.ContentType] = media

		// Shared across variants by construction
		body.Description = variant.Description
		body.Required = variant.Required
	}

	return body
}

func (b *OpenAPIExporter) buildResponse(resp model.ResponseEntry) Response {
	description := resp.Description
	if description == "" {
		description = "Response"
	}

	out := Response{Description: description}

	if !resp.HasBody() {
		return out
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}

	media := MediaType{}
	if raw := validJSON(resp.Example); raw != nil {
		media.Example = raw
	}
	out.Content = map[string]MediaType{contentType: media}

	return out
}

// buildObjectSchema maps a documented field structure onto a JSON
// Schema object. Nested detail lives in field descriptions, so the
// schema is one level deep.
func (b *OpenAPIExporter) buildObjectSchema(fields []model.Field) map[string]interface{} {
	props := make(map[string]interface{})
	var required []string

	for _, field := range fields {
		fieldType := b.mapType(field.Type)
		fieldSchema := map[string]interface{}{
			"type": fieldType,
		}
		if field.Format != "" {
			fieldSchema["format"] = field.Format
		}
		if field.Description != "" {
			fieldSchema["description"] = field.Description
		}
		if fieldType == "array" {
			fieldSchema["items"] = map[string]interface{}{
				"type": arrayItemType(field.Type),
			}
		}
		props[field.Name] = fieldSchema

		if field.Required {
			required = append(required, field.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// mapType maps the documented type words to JSON Schema types.
func (b *OpenAPIExporter) mapType(docType string) string {
	lower := strings.ToLower(strings.TrimSpace(docType))

	switch {
	case lower == "":
		return "string"
	case strings.HasPrefix(lower, "array"), strings.Contains(lower, "[]"), strings.HasPrefix(lower, "list"):
		return "array"
	case strings.Contains(lower, "int"):
		return "integer"
	case strings.Contains(lower, "number"), strings.Contains(lower, "float"), strings.Contains(lower, "double"), strings.Contains(lower, "decimal"):
		return "number"
	case strings.Contains(lower, "bool"):
		return "boolean"
	case strings.Contains(lower, "object"), strings.Contains(lower, "map"), lower == "unknown":
		return "object"
	default:
		return "string"
	}
}

// arrayItemType resolves "array of <T>" to the item schema type.
func arrayItemType(docType string) string {
	lower := strings.ToLower(strings.TrimSpace(docType))
	rest := strings.TrimPrefix(lower, "array of ")
	if rest == lower {
		return "string"
	}
	rest = strings.TrimSuffix(rest, "s")
	switch {
	case strings.Contains(rest, "object"):
		return "object"
	case strings.Contains(rest, "int"):
		return "integer"
	case strings.Contains(rest, "bool"):
		return "boolean"
	case strings.Contains(rest, "number"):
		return "number"
	default:
		return "string"
	}
}

// validJSON returns the example as a raw message when it parses as
// JSON, nil otherwise. Fallback-extracted text fragments must not
// corrupt the output document.
func validJSON(example string) json.RawMessage {
	if example == "" {
		return nil
	}
	if !json.Valid([]byte(example)) {
		return nil
	}
	return json.RawMessage(example)
}
