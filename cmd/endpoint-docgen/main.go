package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/exporter"
	"endpoint-docgen/internal/logger"
	"endpoint-docgen/internal/logparser"
	"endpoint-docgen/internal/model"
	"endpoint-docgen/internal/render"
	"endpoint-docgen/internal/source"
	"endpoint-docgen/internal/summary"
	"endpoint-docgen/internal/ui"
)

const (
	appName    = "Endpoint Docgen"
	appVersion = "1.0.0"
	appDesc    = "Converts API endpoint log files into Markdown documentation"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	inputDir    string
	outputDir   string
	formats     string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&inputDir, "input", "", "Override input directory from config")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "combined", "Comma-separated extra output formats (combined,excel,html,openapi)")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			os.Exit(1)
		}
	}()

	os.Exit(run())
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if inputDir != "" {
		cfg.Input.Dir = inputDir
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "endpoint_docgen.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if verbose {
		cfg.Print()
	}

	stats, err := runConversion(cfg)
	if err != nil {
		logger.Error("Conversion failed: %v", err)
		return 1
	}

	logger.Info("✅ Conversion complete (%s). Check [%s].", stats, cfg.Output.Dir)
	return 0
}

func runConversion(cfg *config.Config) (*model.RunStats, error) {
	stats := &model.RunStats{Date: time.Now().Format("2006-01-02")}

	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseScanning,
		ui.PhaseParsing,
		ui.PhaseReporting,
	})

	// --- Phase 1: Scanning ---
	logger.Info("Phase 1: Scanning input directory...")
	scanBar := pipeline.NextPhase(1)

	files, err := source.ScanDirectory(cfg.Input.Dir, cfg.Input.Pattern, cfg.Input.SummaryFile)
	if err != nil {
		return stats, err
	}
	stats.Found = len(files)
	scanBar.Finish()

	if len(files) == 0 {
		logger.Warn("No %s files found in %s", cfg.Input.Pattern, cfg.Input.Dir)
	}

	// --- Phase 2: Parsing & per-endpoint Markdown ---
	logger.Info("Phase 2: Converting %d endpoint log files...", len(files))
	parseBar := pipeline.NextPhase(len(files))

	records := make([]*model.EndpointRecord, 0, len(files))
	for _, path := range files {
		rec, ok := convertFile(cfg, path)
		if !ok {
			stats.Failed++
			parseBar.Increment()
			continue
		}
		records = append(records, rec)
		stats.Processed++
		parseBar.Increment()
	}
	parseBar.Finish()

	// --- Phase 3: Reporting ---
	logger.Info("Phase 3: Generating reports...")
	exporters := exporter.GetExporters(strings.Split(formats, ","))
	reportBar := pipeline.NextPhase(len(exporters) + 1)

	var exportErrors int
	for _, exp := range exporters {
		if err := exp.Export(records, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors++
		}
		reportBar.Increment()
	}

	if err := convertSummary(cfg); err != nil {
		logger.Warn("Summary report skipped: %v", err)
	}
	reportBar.Increment()
	reportBar.Finish()

	pipeline.Finish()

	if exportErrors > 0 {
		return stats, fmt.Errorf("%d exports failed", exportErrors)
	}
	return stats, nil
}

// convertFile converts one endpoint log file to its Markdown document.
// Failures are file-level: they are logged and counted, never abort the
// batch.
func convertFile(cfg *config.Config, path string) (rec *model.EndpointRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.FileFailure(path, fmt.Errorf("panic: %v", r))
			rec, ok = nil, false
		}
	}()

	name := filepath.Base(path)
	logger.Debug("Processing: %s", name)

	content, err := source.ReadFile(path)
	if err != nil {
		logger.FileFailure(path, err)
		return nil, false
	}
	if !source.IsValidContent(content) {
		logger.FileFailure(path, fmt.Errorf("file is empty"))
		return nil, false
	}

	rec = logparser.Parse(name, content)
	if len(rec.Warnings) > 0 {
		logger.DataQuality(path, rec.Warnings)
	}

	md := render.Endpoint(rec)
	outPath := cfg.OutputPathFor(name, ".md")
	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		logger.FileFailure(path, err)
		return nil, false
	}

	logger.Debug("  → Generated: %s", filepath.Base(outPath))
	return rec, true
}

// convertSummary beautifies the generator's summary file when present.
// A missing summary is not an error; the feature is optional.
func convertSummary(cfg *config.Config) error {
	summaryPath := cfg.SummaryInputPath()
	if summaryPath == "" {
		return nil
	}
	if _, err := os.Stat(summaryPath); os.IsNotExist(err) {
		logger.Debug("No summary file at %s", summaryPath)
		return nil
	}

	raw, err := source.ReadFile(summaryPath)
	if err != nil {
		return err
	}

	report := summary.ParseReport(raw)
	md := summary.NewRenderer(&cfg.Report).Render(report)

	outPath := cfg.OutputPathFor(cfg.Input.SummaryFile, ".md")
	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		return err
	}

	logger.Info("Summary report: %s (%d endpoints)", filepath.Base(outPath), report.TotalEndpoints)
	return nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                  ENDPOINT DOCGEN v1.0.0                   ║
║       API Endpoint Logs to Markdown Documentation         ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
