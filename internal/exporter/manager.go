package exporter

import (
	"strings"

	"endpoint-docgen/internal/exporter/html"
	"endpoint-docgen/internal/exporter/openapi"
)

// GetExporters returns a list of Exporters based on requested formats
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "combined", "markdown", "md":
			exporters = append(exporters, NewCombinedExporter())
		case "excel", "xlsx":
			exporters = append(exporters, NewExcelExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "openapi", "swagger", "json":
			exporters = append(exporters, openapi.NewOpenAPIExporter())
		}
	}

	return exporters
}
