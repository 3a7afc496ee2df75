package source

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func TestScanDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	names := []string{"GET__users.txt", "POST__users.txt", "summary.txt", "notes.md"}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}

	files, err := ScanDirectory(tmpDir, "*.txt", "summary.txt")
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 log files, got %d: %v", len(files), files)
	}

	// Sorted, summary and non-matching files excluded
	if filepath.Base(files[0]) != "GET__users.txt" || filepath.Base(files[1]) != "POST__users.txt" {
		t.Errorf("Unexpected scan result: %v", files)
	}
}

func TestScanDirectoryEmpty(t *testing.T) {
	tmpDir := t.TempDir()

	files, err := ScanDirectory(tmpDir, "*.txt", "summary.txt")
	if err != nil {
		t.Fatalf("ScanDirectory failed on empty dir: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files, got %v", files)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/logs/GET__users.txt", "GET__users"},
		{"POST__orders_order_id.txt", "POST__orders_order_id"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := Stem(tt.path); got != tt.expected {
			t.Errorf("Stem(%s) = %s, expected %s", tt.path, got, tt.expected)
		}
	}
}

func TestDecodeBytesPlainUTF8(t *testing.T) {
	content, err := DecodeBytes([]byte("ENDPOINT: GET /users"))
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if content != "ENDPOINT: GET /users" {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestDecodeBytesUTF8BOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ENDPOINT: GET /users")...)

	if DetectEncoding(raw) != "UTF-8 (BOM)" {
		t.Errorf("Expected UTF-8 (BOM), got %s", DetectEncoding(raw))
	}

	content, err := DecodeBytes(raw)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if content != "ENDPOINT: GET /users" {
		t.Errorf("BOM not stripped: %q", content)
	}
}

func TestDecodeBytesUTF16(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	raw, _, err := transform.Bytes(encoder, []byte("ENDPOINT: POST /orders"))
	if err != nil {
		t.Fatalf("Failed to build UTF-16 fixture: %v", err)
	}

	if DetectEncoding(raw) != "UTF-16" {
		t.Errorf("Expected UTF-16, got %s", DetectEncoding(raw))
	}

	content, err := DecodeBytes(raw)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if content != "ENDPOINT: POST /orders" {
		t.Errorf("UTF-16 decode wrong: %q", content)
	}
}

func TestDecodeBytesWindows1252Fallback(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid as a standalone UTF-8 byte
	raw := []byte{'c', 'a', 'f', 0xE9}

	if DetectEncoding(raw) != "Windows-1252" {
		t.Errorf("Expected Windows-1252, got %s", DetectEncoding(raw))
	}

	content, err := DecodeBytes(raw)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if content != "café" {
		t.Errorf("Windows-1252 decode wrong: %q", content)
	}
}

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "GET__ping.txt")
	if err := os.WriteFile(path, []byte("ENDPOINT: GET /ping"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	content, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !IsValidContent(content) {
		t.Error("Expected valid content")
	}

	if _, err := ReadFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestIsValidContent(t *testing.T) {
	if IsValidContent("   \n\t  ") {
		t.Error("Whitespace-only content should be invalid")
	}
	if !IsValidContent("ENDPOINT: GET /x") {
		t.Error("Real content should be valid")
	}
}
