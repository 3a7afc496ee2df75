package openapi

import (
	"encoding/json"
	"testing"

	"endpoint-docgen/internal/model"
)

func testRecord() *model.EndpointRecord {
	rec := model.NewEndpointRecord("post__orders.txt")
	rec.Method = "POST"
	rec.Path = "/orders"
	rec.Summary = "Create an order"
	rec.Tags = []string{"orders"}
	rec.PathParams = []model.Parameter{}
	rec.QueryParams = []model.Parameter{
		{Name: "dry_run", Type: "boolean", Description: "Validate only"},
	}
	rec.RequestBodies = []model.RequestBodyVariant{
		{
			ContentType: "application/json",
			Required:    true,
			Fields: []model.Field{
				{Name: "item", Type: "string", Required: true},
				{Name: "qty", Type: "integer", Format: "int32"},
				{Name: "labels", Type: "array of strings"},
			},
			Example: `{"item": "widget", "qty": 2}`,
		},
	}
	rec.Responses = []model.ResponseEntry{
		{Status: "201", Description: "Created", ContentType: "application/json", Example: `{"id": 1}`},
		{Status: "404", Description: "No response body"},
	}
	return rec
}

func TestBuildSpecShape(t *testing.T) {
	b := NewOpenAPIExporter()
	spec := b.Build([]*model.EndpointRecord{testRecord()}, "Store API")

	if spec.OpenAPI != "3.0.0" {
		t.Errorf("version = %q", spec.OpenAPI)
	}
	if spec.Info.Title != "Store API" {
		t.Errorf("title = %q", spec.Info.Title)
	}

	item, ok := spec.Paths["/orders"]
	if !ok {
		t.Fatalf("paths = %v", spec.Paths)
	}
	op, ok := item["post"]
	if !ok {
		t.Fatalf("operations = %v", item)
	}

	if op.Summary != "Create an order" {
		t.Errorf("Summary = %q", op.Summary)
	}
	if len(op.Parameters) != 1 || op.Parameters[0].In != "query" {
		t.Errorf("Parameters = %+v", op.Parameters)
	}
	if op.Parameters[0].Schema.Type != "boolean" {
		t.Errorf("query param schema = %+v", op.Parameters[0].Schema)
	}

	if op.RequestBody == nil {
		t.Fatal("RequestBody missing")
	}
	if !op.RequestBody.Required {
		t.Error("RequestBody.Required lost")
	}
	media, ok := op.RequestBody.Content["application/json"]
	if !ok {
		t.Fatalf("content = %v", op.RequestBody.Content)
	}
	if media.Example == nil {
		t.Error("valid JSON example should be carried over")
	}

	schema, ok := media.Schema.(map[string]interface{})
	if !ok {
		t.Fatalf("schema = %#v", media.Schema)
	}
	props := schema["properties"].(map[string]interface{})
	if _, ok := props["item"]; !ok {
		t.Errorf("properties = %v", props)
	}
	labels := props["labels"].(map[string]interface{})
	if labels["type"] != "array" {
		t.Errorf("labels schema = %v", labels)
	}
	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "item" {
		t.Errorf("required = %v", schema["required"])
	}

	if len(op.Responses) != 2 {
		t.Fatalf("Responses = %v", op.Responses)
	}
	if op.Responses["404"].Content != nil {
		t.Error("bodyless response must not carry content")
	}
	if op.Responses["201"].Content == nil {
		t.Error("201 response lost its content")
	}
}

func TestBuildSkipsMalformedRecords(t *testing.T) {
	rec := model.NewEndpointRecord("broken.txt")

	spec := NewOpenAPIExporter().Build([]*model.EndpointRecord{rec}, "")
	if len(spec.Paths) != 0 {
		t.Errorf("malformed record produced a path: %v", spec.Paths)
	}
	if spec.Info.Title != "API Documentation" {
		t.Errorf("default title = %q", spec.Info.Title)
	}
}

func TestBuildInvalidExampleDropped(t *testing.T) {
	rec := testRecord()
	rec.RequestBodies[0].Example = `{"truncated": {`

	spec := NewOpenAPIExporter().Build([]*model.EndpointRecord{rec}, "")
	media := spec.Paths["/orders"]["post"].RequestBody.Content["application/json"]
	if media.Example != nil {
		t.Errorf("invalid JSON example leaked into spec: %s", media.Example)
	}
}

func TestBuildPathParamsForcedRequired(t *testing.T) {
	rec := testRecord()
	rec.Path = "/orders/{order_id}"
	rec.PathParams = []model.Parameter{
		{Name: "order_id", Type: "string", Required: false},
	}

	spec := NewOpenAPIExporter().Build([]*model.EndpointRecord{rec}, "")
	op := spec.Paths["/orders/{order_id}"]["post"]
	if len(op.Parameters) != 2 {
		t.Fatalf("Parameters = %+v", op.Parameters)
	}
	if !op.Parameters[0].Required {
		t.Error("path parameter must be required in the output document")
	}
}

func TestSpecSerializes(t *testing.T) {
	spec := NewOpenAPIExporter().Build([]*model.EndpointRecord{testRecord()}, "Store API")

	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !json.Valid(data) {
		t.Error("spec did not serialize to valid JSON")
	}
	t.Logf("✅ spec serialized, %d bytes", len(data))
}

func TestMapType(t *testing.T) {
	b := NewOpenAPIExporter()
	cases := []struct{ in, want string }{
		{"string", "string"},
		{"integer", "integer"},
		{"int64", "integer"},
		{"number", "number"},
		{"boolean", "boolean"},
		{"array of strings", "array"},
		{"object", "object"},
		{"unknown", "object"},
		{"", "string"},
	}
	for _, tc := range cases {
		if got := b.mapType(tc.in); got != tc.want {
			t.Errorf("mapType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
