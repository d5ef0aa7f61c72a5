package agent

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout resolves the fixed on-disk conventions for a target:
// the input document, the reference table, and the persisted parser.
type Layout struct {
	DataDir   string // input documents and reference tables
	ParserDir string // generated parser output
}

// DefaultLayout matches the repository's directory conventions.
func DefaultLayout() Layout {
	return Layout{DataDir: "data", ParserDir: "custom_parsers"}
}

// PDFPath returns the input document path for target.
func (l Layout) PDFPath(target string) string {
	return filepath.Join(l.DataDir, target, target+" sample.pdf")
}

// CSVPath returns the reference table path for target.
func (l Layout) CSVPath(target string) string {
	return filepath.Join(l.DataDir, target, "result.csv")
}

// ParserPath returns where the generated parser for target is persisted.
func (l Layout) ParserPath(target string) string {
	return filepath.Join(l.ParserDir, target+"_parser.go")
}

// SaveParser writes code to the parser location for target, creating the
// output directory if needed and overwriting any prior parser. Returns the
// written path.
func (l Layout) SaveParser(target, code string) (string, error) {
	if err := os.MkdirAll(l.ParserDir, 0o755); err != nil {
		return "", fmt.Errorf("create parser dir: %w", err)
	}
	path := l.ParserPath(target)
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("write parser: %w", err)
	}
	return path, nil
}
