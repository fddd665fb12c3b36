// Package reader is the upstream collaborator of the generation
// pipeline: it turns an input file into extracted document text. Only
// plain-text formats are read directly; binary formats (PDF, DOCX)
// would plug in behind the same function.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxFileSizeBytes caps input files at 10 MiB.
const MaxFileSizeBytes = 10 << 20

var supportedExtensions = map[string]string{
	".txt":      "text",
	".md":       "markdown",
	".markdown": "markdown",
	".csv":      "csv",
	".json":     "json",
	".xml":      "xml",
	".html":     "html",
}

// SupportedExtensions returns the readable extensions in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Read validates and reads one input file, returning its text content.
func Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := supportedExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported file type %q (supported: %s)",
			ext, strings.Join(SupportedExtensions(), ", "))
	}

	if info.Size() > MaxFileSizeBytes {
		return "", fmt.Errorf("file too large: %d bytes (limit %d)", info.Size(), MaxFileSizeBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
