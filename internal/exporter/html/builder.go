package html

import (
	"html/template"
	"os"
	"sort"
	"strings"
	"time"

	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// ReportData feeds the API documentation template.
type ReportData struct {
	GeneratedDate   string
	Title           string
	TotalEndpoints  int
	DeprecatedCount int
	Records         []*model.EndpointRecord
}

func (e *HTMLExporter) Export(records []*model.EndpointRecord, cfg *config.Config) error {
	// Sort by path, then method, for a stable reading order
	sorted := append([]*model.EndpointRecord(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Method < sorted[j].Method
	})

	deprecated := 0
	for _, rec := range sorted {
		if rec.Deprecated {
			deprecated++
		}
	}

	title := cfg.Report.Title
	if title == "" {
		title = "API Documentation"
	}

	data := ReportData{
		GeneratedDate:   time.Now().Format("2006-01-02"),
		Title:           title,
		TotalEndpoints:  len(sorted),
		DeprecatedCount: deprecated,
		Records:         sorted,
	}

	f, err := os.Create(cfg.CollectionPath(".html"))
	if err != nil {
		return err
	}
	defer f.Close()

	tmpl, err := template.New("api-report").Funcs(template.FuncMap{
		"methodColor": getMethodColor,
		"methodBadge": getMethodBadge,
		"joinTags":    func(tags []string) string { return strings.Join(tags, ", ") },
	}).Parse(APIReportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(f, data)
}

// getMethodColor returns CSS color class for HTTP method
func getMethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "method-get"
	case "POST":
		return "method-post"
	case "PUT":
		return "method-put"
	case "DELETE":
		return "method-delete"
	case "PATCH":
		return "method-patch"
	default:
		return "method-default"
	}
}

// getMethodBadge returns badge text for HTTP method
func getMethodBadge(method string) string {
	if method == "" {
		return "?"
	}
	return strings.ToUpper(method)
}
