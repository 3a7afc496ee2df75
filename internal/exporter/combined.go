package exporter

import (
	"os"

	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/model"
	"endpoint-docgen/internal/render"
)

// CombinedExporter writes the single combined Markdown document with a
// table of contents linking every endpoint.
type CombinedExporter struct {
	// Stateless
}

// NewCombinedExporter creates a new CombinedExporter
func NewCombinedExporter() *CombinedExporter {
	return &CombinedExporter{}
}

// Export renders all records into one collection document.
func (e *CombinedExporter) Export(records []*model.EndpointRecord, cfg *config.Config) error {
	md := render.Collection(cfg.Report.Title, records)
	return os.WriteFile(cfg.CollectionPath(".md"), []byte(md), 0o644)
}
