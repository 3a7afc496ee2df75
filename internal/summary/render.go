package summary

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"endpoint-docgen/internal/config"
	"endpoint-docgen/internal/model"
)

// restMethodOrder is the presentation order of the per-method sections.
// Methods the summary mentions but this list does not are appended
// alphabetically.
var restMethodOrder = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

var methodEmoji = map[string]string{
	"GET":    "📖",
	"POST":   "➕",
	"PUT":    "📝",
	"PATCH":  "🔧",
	"DELETE": "❌",
}

var changeMethodRe = regexp.MustCompile(`^(GET|POST|PUT|DELETE|PATCH)\s+(.+)$`)

// Renderer renders an APIReport as Markdown according to the report
// options in the configuration.
type Renderer struct {
	cfg *config.ReportConfig

	// now is stubbed in tests
	now func() time.Time
}

// NewRenderer creates a renderer bound to the given report options.
func NewRenderer(cfg *config.ReportConfig) *Renderer {
	return &Renderer{cfg: cfg, now: time.Now}
}

// Render produces the full Markdown report.
func (r *Renderer) Render(report *model.APIReport) string {
	var b strings.Builder

	title := r.cfg.Title
	if title == "" {
		title = "API Endpoints Documentation"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString(r.badges(report))
	b.WriteString(r.toc())
	b.WriteString(r.executiveSummary(report))
	b.WriteString(r.overview(report))
	b.WriteString(r.endpointSections(report))
	b.WriteString(r.changesSection(report))
	b.WriteString(r.footer())

	return b.String()
}

func (r *Renderer) badges(report *model.APIReport) string {
	if !r.cfg.IncludeBadges {
		return ""
	}

	badges := []string{
		fmt.Sprintf("![Total Endpoints](https://img.shields.io/badge/Total%%20Endpoints-%d-blue)", report.TotalEndpoints),
	}
	if report.AddedCount > 0 {
		badges = append(badges, fmt.Sprintf("![Added](https://img.shields.io/badge/Added-%d-green)", report.AddedCount))
	}
	if report.ModifiedCount > 0 {
		badges = append(badges, fmt.Sprintf("![Modified](https://img.shields.io/badge/Modified-%d-yellow)", report.ModifiedCount))
	}
	if report.DeletedCount > 0 {
		badges = append(badges, fmt.Sprintf("![Deleted](https://img.shields.io/badge/Deleted-%d-red)", report.DeletedCount))
	}

	return strings.Join(badges, " ") + "\n\n"
}

func (r *Renderer) toc() string {
	if !r.cfg.IncludeTOC {
		return ""
	}

	var b strings.Builder
	b.WriteString("## 📋 Table of Contents\n\n")
	b.WriteString("- [Executive Summary](#executive-summary)\n")
	b.WriteString("- [API Overview](#api-overview)\n")
	b.WriteString("- [Endpoints by HTTP Method](#endpoints-by-http-method)\n")
	b.WriteString("- [Recent Changes](#recent-changes)\n")
	b.WriteString("  - [Added Endpoints](#added-endpoints)\n")
	b.WriteString("  - [Modified Endpoints](#modified-endpoints)\n")
	b.WriteString("  - [Deleted Endpoints](#deleted-endpoints)\n")
	if r.cfg.AddTimestamps {
		b.WriteString("- [Report Information](#report-information)\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) executiveSummary(report *model.APIReport) string {
	if !r.cfg.IncludeSummary {
		return ""
	}

	var b strings.Builder
	b.WriteString("## 📊 Executive Summary\n\n")
	fmt.Fprintf(&b, "This API documentation covers **%d** active endpoints across **%d** HTTP methods.\n\n",
		report.TotalEndpoints, len(report.EndpointsByMethod))

	if report.AddedCount > 0 || report.ModifiedCount > 0 || report.DeletedCount > 0 {
		b.WriteString("### Recent Changes\n\n")
		fmt.Fprintf(&b, "- ✅ **%d** endpoints added\n", report.AddedCount)
		fmt.Fprintf(&b, "- 🔄 **%d** endpoints modified\n", report.ModifiedCount)
		fmt.Fprintf(&b, "- ❌ **%d** endpoints deleted\n\n", report.DeletedCount)
	}

	return b.String()
}

func (r *Renderer) overview(report *model.APIReport) string {
	var b strings.Builder
	b.WriteString("## 🌐 API Overview\n\n")
	fmt.Fprintf(&b, "**Base URL:** `%s`\n\n", report.BaseURL)

	b.WriteString("### HTTP Methods Distribution\n\n")
	b.WriteString("| Method | Count | Percentage |\n")
	b.WriteString("|--------|-------|------------|\n")

	total := 0
	for _, endpoints := range report.EndpointsByMethod {
		total += len(endpoints)
	}

	methods := make([]string, 0, len(report.EndpointsByMethod))
	for method := range report.EndpointsByMethod {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	for _, method := range methods {
		count := len(report.EndpointsByMethod[method])
		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100
		}
		fmt.Fprintf(&b, "| `%s` | %d | %.1f%% |\n", method, count, percentage)
	}

	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) endpointSections(report *model.APIReport) string {
	var b strings.Builder
	b.WriteString("## 🔌 Endpoints by HTTP Method\n\n")

	for _, method := range orderedMethods(report) {
		endpoints := report.EndpointsByMethod[method]
		emoji, ok := methodEmoji[method]
		if !ok {
			emoji = "🔗"
		}
		fmt.Fprintf(&b, "### %s %s (%d endpoints)\n\n", emoji, method, len(endpoints))
		b.WriteString(r.endpointList(endpoints, method))
	}

	return b.String()
}

func (r *Renderer) changesSection(report *model.APIReport) string {
	var b strings.Builder
	b.WriteString("## 🔄 Recent Changes\n\n")

	b.WriteString("### ✅ Added Endpoints\n\n")
	b.WriteString(r.changeList(report.AddedEndpoints, "added"))

	b.WriteString("### 🔄 Modified Endpoints\n\n")
	b.WriteString(r.changeList(report.ModifiedEndpoints, "modified"))

	b.WriteString("### ❌ Deleted Endpoints\n\n")
	b.WriteString(r.changeList(report.DeletedEndpoints, "deleted"))

	return b.String()
}

func (r *Renderer) changeList(entries []string, verb string) string {
	if len(entries) == 0 {
		return fmt.Sprintf("_No endpoints %s_\n\n", verb)
	}

	if r.cfg.SortEndpoints {
		entries = append([]string(nil), entries...)
		sort.Strings(entries)
	}

	var b strings.Builder
	for _, entry := range entries {
		if m := changeMethodRe.FindStringSubmatch(entry); m != nil {
			fmt.Fprintf(&b, "- **`%s`** %s\n", m[1], r.endpointLink(m[1], m[2]))
		} else {
			fmt.Fprintf(&b, "- `%s`\n", entry)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) endpointList(endpoints []string, method string) string {
	if len(endpoints) == 0 {
		return "_No endpoints_\n\n"
	}

	if r.cfg.SortEndpoints {
		endpoints = append([]string(nil), endpoints...)
		sort.Strings(endpoints)
	}

	var b strings.Builder
	for _, endpoint := range endpoints {
		fmt.Fprintf(&b, "- **`%s`** %s\n", method, r.endpointLink(method, endpoint))
	}
	b.WriteString("\n")
	return b.String()
}

// endpointLink hyperlinks the endpoint to its source log file on GitHub
// when a base URL is configured, else renders it as plain code.
func (r *Renderer) endpointLink(method, endpoint string) string {
	if r.cfg.GitHubBaseURL == "" {
		return "`" + endpoint + "`"
	}

	branch := r.cfg.GitHubBranch
	if branch == "" {
		branch = "main"
	}
	url := fmt.Sprintf("%s/%s/%s", r.cfg.GitHubBaseURL, branch, EndpointFilename(method, endpoint))
	return fmt.Sprintf("[`%s`](%s)", endpoint, url)
}

func (r *Renderer) footer() string {
	if !r.cfg.AddTimestamps {
		return ""
	}

	var b strings.Builder
	b.WriteString("## 📋 Report Information\n\n")
	fmt.Fprintf(&b, "- **Generated:** %s\n", r.now().UTC().Format("2006-01-02 15:04:05 UTC"))
	if r.cfg.GitHubBaseURL != "" {
		branch := r.cfg.GitHubBranch
		if branch == "" {
			branch = "main"
		}
		fmt.Fprintf(&b, "- **Hyperlinks:** Enabled (Branch: %s)\n", branch)
	}
	return b.String()
}

// orderedMethods yields the per-method sections in REST order (GET,
// POST, PUT, PATCH, DELETE), then any remaining methods alphabetically.
func orderedMethods(report *model.APIReport) []string {
	ordered := []string{}
	seen := make(map[string]bool)

	for _, method := range restMethodOrder {
		if _, ok := report.EndpointsByMethod[method]; ok {
			ordered = append(ordered, method)
			seen[method] = true
		}
	}

	rest := []string{}
	for method := range report.EndpointsByMethod {
		if !seen[method] {
			rest = append(rest, method)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

var nonWordRe = regexp.MustCompile(`[^\w]`)
var underscoreRunRe = regexp.MustCompile(`_+`)

// EndpointFilename maps a method and path to the generator's log file
// name, e.g. POST /content/topics/{topic_id}/upload/ becomes
// "POST__content_topics_topic_id_upload.txt".
func EndpointFilename(method, endpoint string) string {
	path := strings.TrimLeft(endpoint, "/")
	path = strings.ReplaceAll(path, "/", "_")
	path = nonWordRe.ReplaceAllString(path, "_")
	path = underscoreRunRe.ReplaceAllString(path, "_")
	path = strings.Trim(path, "_")
	return fmt.Sprintf("%s__%s.txt", method, path)
}
