package exporter

import (
	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/model"
)

// Exporter is the unified interface for all output strategies beyond
// the per-endpoint Markdown files.
type Exporter interface {
	Export(records []*model.EndpointRecord, cfg *config.Config) error
}
