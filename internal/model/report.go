package model

import "fmt"

// APIReport holds the parsed contents of the generator's summary file
// (total counts, base URL, per-method endpoint lists and change sets).
// It feeds the beautified summary Markdown report.
type APIReport struct {
	TotalEndpoints    int
	AddedCount        int
	ModifiedCount     int
	DeletedCount      int
	BaseURL           string
	MethodOrder       []string            // methods in first-seen order
	EndpointsByMethod map[string][]string // method -> sorted paths
	DeletedEndpoints  []string            // "METHOD /path" lines
	AddedEndpoints    []string
	ModifiedEndpoints []string
}

// NewAPIReport creates an empty report.
func NewAPIReport() *APIReport {
	return &APIReport{
		MethodOrder:       []string{},
		EndpointsByMethod: make(map[string][]string),
		DeletedEndpoints:  []string{},
		AddedEndpoints:    []string{},
		ModifiedEndpoints: []string{},
	}
}

// AddEndpoint appends a path under its method, tracking method order.
func (r *APIReport) AddEndpoint(method, path string) {
	if _, ok := r.EndpointsByMethod[method]; !ok {
		r.MethodOrder = append(r.MethodOrder, method)
	}
	r.EndpointsByMethod[method] = append(r.EndpointsByMethod[method], path)
}

// RunStats summarises one batch conversion run.
type RunStats struct {
	Date      string // run date (2006-01-02)
	Found     int    // input files discovered
	Processed int    // files converted successfully
	Failed    int    // files skipped because of a file-level failure
}

// String renders the stats line for the end-of-run log message.
func (s *RunStats) String() string {
	return fmt.Sprintf("%s: found %d, processed %d, failed %d",
		s.Date, s.Found, s.Processed, s.Failed)
}
