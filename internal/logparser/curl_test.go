package logparser

import (
	"strings"
	"testing"
)

func TestParseCurlExamplesBasicOnly(t *testing.T) {
	basic := "\ncurl -X GET \"https://api.example.com/users\" \\\n  -H \"Accept: application/json\"\n"

	examples := ParseCurlExamples(basic, "", "")
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
	if examples[0].Title != BasicCurlTitle {
		t.Errorf("Title = %q", examples[0].Title)
	}
	// Continuations survive verbatim; only outer whitespace is trimmed
	want := "curl -X GET \"https://api.example.com/users\" \\\n  -H \"Accept: application/json\""
	if examples[0].Command != want {
		t.Errorf("Command = %q, want %q", examples[0].Command, want)
	}
}

func TestParseCurlExamplesTitledBlocks(t *testing.T) {
	advanced := strings.Join([]string{
		"# With authentication:",
		`curl -X GET "https://api.example.com/users" \`,
		`  -H "Authorization: Bearer $TOKEN"`,
		"",
		"# With pagination:",
		`curl -X GET "https://api.example.com/users?page=2"`,
	}, "\n")
	contentSpecific := strings.Join([]string{
		"# JSON body:",
		`curl -X POST "https://api.example.com/users" \`,
		`  -H "Content-Type: application/json" \`,
		`  -d '{"name": "Ada"}'`,
	}, "\n")

	examples := ParseCurlExamples("curl -X GET \"https://api.example.com/users\"", advanced, contentSpecific)
	if len(examples) != 4 {
		t.Fatalf("expected 4 examples, got %d", len(examples))
	}

	titles := []string{BasicCurlTitle, "With authentication", "With pagination", "JSON body"}
	for i, want := range titles {
		if examples[i].Title != want {
			t.Errorf("example %d title = %q, want %q", i, examples[i].Title, want)
		}
	}

	if strings.Contains(examples[1].Command, "# With pagination") {
		t.Error("first titled block swallowed the next title")
	}
	if !strings.Contains(examples[3].Command, `{"name": "Ada"}`) {
		t.Errorf("content-specific command lost its body: %q", examples[3].Command)
	}
}

func TestParseCurlExamplesTitleWithColon(t *testing.T) {
	advanced := strings.Join([]string{
		"# Example: filtered query:",
		`curl "https://api.example.com/users?filter=active"`,
	}, "\n")

	examples := ParseCurlExamples("", advanced, "")
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
	if examples[0].Title != "Example: filtered query" {
		t.Errorf("Title = %q", examples[0].Title)
	}
}

func TestParseCurlExamplesEmpty(t *testing.T) {
	examples := ParseCurlExamples("", "   \n", "")
	if examples == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(examples) != 0 {
		t.Errorf("got %d examples", len(examples))
	}
}

func TestParseCurlExamplesTitleWithoutCommand(t *testing.T) {
	examples := ParseCurlExamples("", "# Dangling title:\n\n", "")
	if len(examples) != 0 {
		t.Errorf("title with no command should be skipped, got %+v", examples)
	}
}
