package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDirectory finds endpoint log files in dir matching the glob pattern.
// The summary file is excluded; it is handled by the summary pipeline, not
// the per-endpoint batch. Results are sorted for deterministic output.
func ScanDirectory(dir, pattern, summaryFile string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	files := make([]string, 0, len(matches))
	for _, path := range matches {
		if summaryFile != "" && filepath.Base(path) == summaryFile {
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

// Stem returns the file name without directory or extension.
// "/logs/GET__users.txt" -> "GET__users"
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
