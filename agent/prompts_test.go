package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePromptEmbedsOrderedColumns(t *testing.T) {
	p := generatePrompt("the analysis", "icici", []string{"Date", "Description", "Balance"})

	assert.Contains(t, p, "Expected Columns: Date, Description, Balance")
	assert.Contains(t, p, `"Date", "Description", "Balance"`)
	assert.Contains(t, p, "the analysis")
	assert.Contains(t, p, "Target Bank:** icici")
	assert.Contains(t, p, "//go:build ignore")
}

func TestGeneratePromptToleratesEmptyAnalysis(t *testing.T) {
	p := generatePrompt("", "sbi", []string{"Date"})
	assert.Contains(t, p, "Target Bank:** sbi")
}

func TestCorrectPromptEmbedsCodeAndErrorVerbatim(t *testing.T) {
	p := correctPrompt("func parse() {}", "Mismatch in column 'Balance'")
	assert.Contains(t, p, "func parse() {}")
	assert.Contains(t, p, "Mismatch in column 'Balance'")
}

func TestAnalyzePromptEmbedsSummaryAndPath(t *testing.T) {
	p := analyzePrompt("Shape: (100, 5)", "data/icici/icici sample.pdf")
	assert.Contains(t, p, "Shape: (100, 5)")
	assert.Contains(t, p, "data/icici/icici sample.pdf")
}
