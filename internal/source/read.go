package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads one endpoint log file with encoding tolerance. The
// upstream generator writes UTF-8, but files that passed through Windows
// tooling show up with a UTF-8 BOM, as UTF-16 with BOM, or re-encoded to
// Windows-1252. The whole file is read and decoded before parsing starts.
func ReadFile(path string) (string, error) {
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	content, err := DecodeBytes(rawBytes)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return content, nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeBytes converts raw file bytes to a string, handling BOMs,
// UTF-16 and a Windows-1252 fallback for invalid UTF-8.
func DecodeBytes(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), nil

	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", fmt.Errorf("UTF-16 decode failed: %w", err)
		}
		return string(decoded), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	// Last resort: treat as Windows-1252 (never fails, all bytes map)
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return string(data), fmt.Errorf("fallback decode failed: %w", err)
	}
	return string(decoded), nil
}

// DetectEncoding reports the encoding DecodeBytes would assume for data.
func DetectEncoding(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "UTF-8 (BOM)"
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		return "UTF-16"
	case utf8.Valid(data):
		return "UTF-8"
	default:
		return "Windows-1252"
	}
}

// IsValidContent checks that decoded content has something to parse.
func IsValidContent(content string) bool {
	return len(strings.TrimSpace(content)) > 0
}
