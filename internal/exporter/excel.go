package exporter

import (
	"fmt"
	"sort"
	"strings"

	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/model"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel workbook: an Overview sheet with counts
// and method distribution, and an Endpoints sheet with one row per
// parsed record.
func (e *ExcelExporter) Export(records []*model.EndpointRecord, cfg *config.Config) error {
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := e.writeOverview(f, styler, records); err != nil {
		return err
	}

	if err := e.writeEndpoints(f, styler, records); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	return f.SaveAs(cfg.CollectionPath(".xlsx"))
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, records []*model.EndpointRecord) error {
	sheet := "Overview"
	f.NewSheet(sheet)

	row := 1
	e.writeRow(f, sheet, row, []string{"Metric", "Count"}, s.HeaderStyle)
	row++

	deprecated := 0
	withWarnings := 0
	byMethod := make(map[string]int)
	for _, rec := range records {
		if rec.Deprecated {
			deprecated++
		}
		if len(rec.Warnings) > 0 {
			withWarnings++
		}
		if rec.Method != "" {
			byMethod[rec.Method]++
		}
	}

	metrics := []struct {
		Key string
		Val int
	}{
		{"Total Endpoints", len(records)},
		{"Deprecated Endpoints", deprecated},
		{"Endpoints With Warnings", withWarnings},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		row++
	}

	row += 2 // Spacer

	e.writeRow(f, sheet, row, []string{"Method", "Endpoints"}, s.HeaderStyle)
	row++

	methods := make([]string, 0, len(byMethod))
	for method := range byMethod {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	for _, method := range methods {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), method)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), byMethod[method])
		row++
	}

	f.SetColWidth(sheet, "A", "A", 30)

	return nil
}

// --- Endpoints Sheet Logic ---

func (e *ExcelExporter) writeEndpoints(f *excelize.File, s *Styler, records []*model.EndpointRecord) error {
	sheet := "Endpoints"
	f.NewSheet(sheet)

	headers := []string{"No", "Method", "Path", "Summary", "Tags", "Path Params", "Query Params", "Content Types", "Statuses", "Deprecated", "Warnings"}
	e.writeRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for i, rec := range records {
		style := s.DefaultStyle
		switch {
		case rec.Deprecated:
			style = s.DeprecatedStyle
		case len(rec.Warnings) > 0:
			style = s.WarningStyle
		}

		path := rec.Path
		if rec.IsMalformed() {
			path = rec.Filename
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.Method)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), path)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), rec.Summary)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), strings.Join(rec.Tags, ", "))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), len(rec.PathParams))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), len(rec.QueryParams))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), contentTypes(rec))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), statuses(rec))
		if rec.Deprecated {
			f.SetCellValue(sheet, fmt.Sprintf("J%d", row), "Yes")
		}
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), strings.Join(rec.Warnings, "; "))

		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("K%d", row), style)
		if style == s.DefaultStyle {
			// clean rows get the highlighted method/path pair
			f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), s.EndpointStyle)
		}
		row++
	}

	f.SetColWidth(sheet, "C", "D", 40)
	f.SetColWidth(sheet, "E", "E", 25)
	f.SetColWidth(sheet, "H", "I", 25)
	f.SetColWidth(sheet, "K", "K", 50)

	return nil
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func contentTypes(rec *model.EndpointRecord) string {
	types := make([]string, 0, len(rec.RequestBodies))
	for _, body := range rec.RequestBodies {
		types = append(types, body.ContentType)
	}
	return strings.Join(types, ", ")
}

func statuses(rec *model.EndpointRecord) string {
	codes := make([]string, 0, len(rec.Responses))
	for _, resp := range rec.Responses {
		codes = append(codes, resp.Status)
	}
	return strings.Join(codes, ", ")
}
