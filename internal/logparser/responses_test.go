package logparser

import (
	"strings"
	"testing"
)

func TestParseResponsesFull(t *testing.T) {
	section := strings.Join([]string{
		"Status 200: The created user",
		"  Content-Type: application/json",
		"  Response Structure:",
		"  id: string",
		"  name: string",
		"  Example Response:",
		`  {"id": "usr_1", "name": "Ada"}`,
		"",
		"Status 404: Not found",
		"No response body",
	}, "\n")

	responses, warnings := ParseResponses(section)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}

	ok := responses[0]
	if ok.Status != "200" {
		t.Errorf("Status = %q", ok.Status)
	}
	if ok.Description != "The created user" {
		t.Errorf("Description = %q", ok.Description)
	}
	if ok.ContentType != "application/json" {
		t.Errorf("ContentType = %q", ok.ContentType)
	}
	if !strings.Contains(ok.Schema, "id: string") || strings.Contains(ok.Schema, "Example Response") {
		t.Errorf("Schema = %q", ok.Schema)
	}
	if ok.Example != `{"id": "usr_1", "name": "Ada"}` {
		t.Errorf("Example = %q", ok.Example)
	}
	if !ok.HasBody() {
		t.Error("200 entry should report a body")
	}

	nf := responses[1]
	if nf.Status != "404" {
		t.Errorf("Status = %q", nf.Status)
	}
	if nf.Description != "No response body" {
		t.Errorf("Description = %q", nf.Description)
	}
	if nf.ContentType != "" || nf.Schema != "" || nf.Example != "" {
		t.Errorf("bodyless entry carries content: %+v", nf)
	}
	if nf.HasBody() {
		t.Error("404 entry should not report a body")
	}
}

func TestParseResponsesFallbackBoundary(t *testing.T) {
	// Non-JSON example text: balanced extraction fails, the fallback
	// slice stops at the next blank-line-plus-capital boundary.
	section := strings.Join([]string{
		"Status 200: OK",
		"  Example Response:",
		"  plain text payload line one",
		"  line two",
		"",
		"Some trailing prose that is not part of the example.",
	}, "\n")

	responses, warnings := ParseResponses(section)
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}

	want := "plain text payload line one\n  line two"
	if responses[0].Example != want {
		t.Errorf("Example = %q, want %q", responses[0].Example, want)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "fallback") {
		t.Errorf("expected a fallback warning, got %v", warnings)
	}
}

func TestParseResponsesDuplicateStatus(t *testing.T) {
	section := strings.Join([]string{
		"Status 200: first",
		"",
		"Status 200: second",
	}, "\n")

	responses, warnings := ParseResponses(section)
	if len(responses) != 1 {
		t.Fatalf("expected 1 response after dedupe, got %d", len(responses))
	}
	if responses[0].Description != "first" {
		t.Errorf("first occurrence should win, got %q", responses[0].Description)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "200") {
		t.Errorf("expected one duplicate warning naming the status, got %v", warnings)
	}
}

func TestParseResponsesEdgeCases(t *testing.T) {
	t.Run("empty section", func(t *testing.T) {
		responses, warnings := ParseResponses("")
		if responses == nil {
			t.Fatal("expected non-nil empty slice")
		}
		if len(responses) != 0 || len(warnings) != 0 {
			t.Errorf("got %d responses, %d warnings", len(responses), len(warnings))
		}
	})

	t.Run("no status lines", func(t *testing.T) {
		responses, _ := ParseResponses("free text without any status block")
		if len(responses) != 0 {
			t.Errorf("got %d responses", len(responses))
		}
	})

	t.Run("example placeholder", func(t *testing.T) {
		section := "Status 200: OK\n  Example Response:\n  No example available"
		responses, warnings := ParseResponses(section)
		if len(responses) != 1 {
			t.Fatalf("got %d responses", len(responses))
		}
		if responses[0].Example != "" {
			t.Errorf("placeholder should map to empty example, got %q", responses[0].Example)
		}
		if len(warnings) != 0 {
			t.Errorf("placeholder is not a degradation: %v", warnings)
		}
	})

	t.Run("nested json example", func(t *testing.T) {
		section := "Status 201: Created\n  Example Response:\n" +
			`  {"user": {"id": 1}, "note": "see {docs}"}`
		responses, warnings := ParseResponses(section)
		if len(responses) != 1 {
			t.Fatalf("got %d responses", len(responses))
		}
		if responses[0].Example != `{"user": {"id": 1}, "note": "see {docs}"}` {
			t.Errorf("Example = %q", responses[0].Example)
		}
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
	})
}
