//go:build ignore

package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/mahakitis/ai-agent-challenge/pdfutil"
)

var expectedColumns = []string{"Date", "Description", "Debit Amt", "Credit Amt", "Balance"}

var datePattern = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{4}`)
var splitPattern = regexp.MustCompile(`\s{2,}|\t`)

func parse(pdfPath string) ([][]string, error) {
	var data [][]string

	// Method 1: row-based extraction for structured tables.
	rows, err := pdfutil.ExtractRows(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("error parsing PDF: %w", err)
	}
	for _, row := range rows {
		if len(row) >= len(expectedColumns) && datePattern.MatchString(row[0]) {
			data = append(data, cleanRow(row[:len(expectedColumns)]))
		}
	}

	// Method 2: if no rows found, fall back to text parsing.
	if len(data) == 0 {
		text, err := pdfutil.ExtractText(pdfPath)
		if err != nil {
			return nil, fmt.Errorf("error parsing PDF: %w", err)
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if !datePattern.MatchString(line) {
				continue
			}
			parts := splitPattern.Split(line, -1)
			if len(parts) >= len(expectedColumns) {
				data = append(data, cleanRow(parts[:len(expectedColumns)]))
			}
		}
	}

	return data, nil
}

func cleanRow(row []string) []string {
	clean := make([]string, len(row))
	for i, cell := range row {
		clean[i] = strings.TrimSpace(cell)
	}

	// Normalize the date to MM-DD-YYYY.
	if datePattern.MatchString(clean[0]) {
		layout := "01-02-2006"
		if strings.Contains(clean[0], "/") {
			layout = "01/02/2006"
		}
		if parsed, err := time.Parse(layout, clean[0]); err == nil {
			clean[0] = parsed.Format("01-02-2006")
		}
	}

	// Strip thousands separators from the numeric columns.
	for _, i := range []int{2, 3, 4} {
		if i < len(clean) {
			clean[i] = strings.ReplaceAll(clean[i], ",", "")
		}
	}

	return clean
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: icici_parser <pdf-path>")
		os.Exit(1)
	}
	data, err := parse(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := pdfutil.WriteCSV(os.Stdout, expectedColumns, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
