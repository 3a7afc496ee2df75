package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/exporter"
	"endpoint-docgen/internal/logparser"
	"endpoint-docgen/internal/model"
	"endpoint-docgen/internal/render"
	"endpoint-docgen/internal/source"
	"endpoint-docgen/internal/summary"
)

// TestEndToEndFlow drives the full pipeline over the fixture logs:
// scan, parse, per-endpoint Markdown, batch exports and the summary
// report. One fixture is intentionally unreadable content to exercise
// failure isolation.
func TestEndToEndFlow(t *testing.T) {
	inputDir, _ := filepath.Abs("../../testdata/endpoint_logs")
	outputDir := t.TempDir()

	cfg := &config.Config{
		Input: config.InputConfig{
			Dir:         inputDir,
			Pattern:     "*.txt",
			SummaryFile: "summary.txt",
		},
		Output: config.OutputConfig{
			Dir:            outputDir,
			CollectionName: "e2e_docs",
		},
		Report: config.ReportConfig{
			Title:          "E2E Store API",
			IncludeTOC:     true,
			IncludeSummary: true,
			IncludeBadges:  true,
			SortEndpoints:  true,
		},
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		t.Fatalf("EnsureOutputDir: %v", err)
	}

	// 1. Scan (summary file excluded from the batch)
	files, err := source.ScanDirectory(cfg.Input.Dir, cfg.Input.Pattern, cfg.Input.SummaryFile)
	if err != nil {
		t.Fatalf("Scanning failed: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("expected 4 input files, got %d: %v", len(files), files)
	}

	// 2. Parse + per-endpoint Markdown
	var records []*model.EndpointRecord
	processed, failed := 0, 0
	for _, path := range files {
		content, err := source.ReadFile(path)
		if err != nil || !source.IsValidContent(content) {
			failed++
			continue
		}

		rec := logparser.Parse(filepath.Base(path), content)
		md := render.Endpoint(rec)
		if err := os.WriteFile(cfg.OutputPathFor(path, ".md"), []byte(md), 0o644); err != nil {
			failed++
			continue
		}
		records = append(records, rec)
		processed++
	}

	// Failure isolation: the whitespace-only file fails, the rest go on
	if processed != 3 || failed != 1 {
		t.Fatalf("processed=%d failed=%d, want 3/1", processed, failed)
	}

	for _, name := range []string{"GET__items.md", "POST__items.md", "DELETE__items_item_id.md"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); os.IsNotExist(err) {
			t.Errorf("expected output file missing: %s", name)
		} else {
			t.Logf("✅ Verified output: %s", name)
		}
	}
	if _, err := os.Stat(filepath.Join(outputDir, "GET__broken.md")); err == nil {
		t.Error("failed input must not produce an output file")
	}

	// 3. Exports
	for _, exp := range exporter.GetExporters([]string{"combined", "excel", "html", "openapi"}) {
		if err := exp.Export(records, cfg); err != nil {
			t.Errorf("Export failed: %v", err)
		}
	}

	for _, name := range []string{
		"e2e_docs.md",
		"e2e_docs.xlsx",
		"e2e_docs.html",
		"e2e_docs.openapi.json",
	} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); os.IsNotExist(err) {
			t.Errorf("expected export missing: %s", name)
		} else {
			t.Logf("✅ Verified export: %s", name)
		}
	}

	// 4. Summary report
	raw, err := source.ReadFile(cfg.SummaryInputPath())
	if err != nil {
		t.Fatalf("summary read failed: %v", err)
	}
	report := summary.ParseReport(raw)
	summaryMD := summary.NewRenderer(&cfg.Report).Render(report)
	summaryPath := cfg.OutputPathFor(cfg.Input.SummaryFile, ".md")
	if err := os.WriteFile(summaryPath, []byte(summaryMD), 0o644); err != nil {
		t.Fatalf("summary write failed: %v", err)
	}

	verifyEndpointMarkdown(t, outputDir)
	verifySummaryMarkdown(t, summaryPath)
}

func verifyEndpointMarkdown(t *testing.T, outputDir string) {
	data, err := os.ReadFile(filepath.Join(outputDir, "POST__items.md"))
	if err != nil {
		t.Fatalf("cannot read converted document: %v", err)
	}
	md := string(data)

	for _, frag := range []string{
		"# POST /items",
		"## Request Body",
		"### application/json",
		"### multipart/form-data",
		"| `name` | string |  | ✓ | Display name of the item. |",
		"| `price` | number | float | ✓ |  |",
		`{"name": "Widget", "price": 9.99, "labels": ["new"]}`,
		"#### Status 422",
		"## cURL Examples",
		"### Multipart upload",
	} {
		if !strings.Contains(md, frag) {
			t.Errorf("POST__items.md missing fragment %q", frag)
		}
	}

	// "No example available" maps to nothing, not a literal block
	if strings.Contains(md, "No example available") {
		t.Error("placeholder example leaked into output")
	}

	// Deprecated endpoint carries its marker row
	data, err = os.ReadFile(filepath.Join(outputDir, "DELETE__items_item_id.md"))
	if err != nil {
		t.Fatalf("cannot read converted document: %v", err)
	}
	if !strings.Contains(string(data), "| **Deprecated** | ⚠️ Yes |") {
		t.Error("DELETE__items_item_id.md missing deprecated row")
	}
}

func verifySummaryMarkdown(t *testing.T, summaryPath string) {
	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("cannot read summary report: %v", err)
	}
	md := string(data)

	for _, frag := range []string{
		"# E2E Store API",
		"![Total Endpoints](https://img.shields.io/badge/Total%20Endpoints-3-blue)",
		"## 🔌 Endpoints by HTTP Method",
		"- **`GET`** `/items`",
		"### ❌ Deleted Endpoints",
		"- **`GET`** `/legacy/items`",
	} {
		if !strings.Contains(md, frag) {
			t.Errorf("summary report missing fragment %q", frag)
		}
	}
	t.Log("✅ Summary report verified")
}
