package agent

import (
	"fmt"
	"strings"
)

// Prompt builders for the four generative steps. Each returns a single
// self-contained prompt string; the model's reply is consumed raw (analyze,
// reflect) or run through ExtractCode (generate, correct).

func analyzePrompt(summary, pdfPath string) string {
	return fmt.Sprintf(`You are a Go expert specializing in PDF data extraction. Analyze the bank statement PDF and the expected CSV output to understand the structure.

**Expected CSV structure:**
%s

**PDF file:** %s

Your analysis should cover:

1. **CSV Structure Analysis:**
   - Column names and their meaning
   - Data types for each column
   - Date formats used
   - Numeric formats (currency, decimals, missing values)

2. **PDF Structure Analysis:**
   - Page layout and organization
   - Table structure (if tables exist)
   - Text patterns and formatting
   - Transaction data location
   - Potential extraction challenges

3. **Extraction Strategy:**
   - Recommend row-based extraction (pdfutil.ExtractRows) vs free-text parsing (pdfutil.ExtractText)
   - Identify key text patterns for regexp extraction
   - Suggest data cleaning steps needed
   - Flag potential edge cases

Provide a detailed technical analysis that will guide the parser generation.`, summary, pdfPath)
}

func generatePrompt(analysis, target string, columns []string) string {
	cols := strings.Join(columns, ", ")
	return fmt.Sprintf(`Create a robust Go program that extracts bank statement data from a PDF and prints it as CSV.

**STRICT REQUIREMENTS:**
- The file must start with a "//go:build ignore" line and declare "package main"
- Define: func parse(pdfPath string) ([][]string, error) returning data rows (no header)
- main must read the PDF path from os.Args[1], call parse, and print the table as CSV to stdout with the header row first
- Use ONLY these packages: github.com/mahakitis/ai-agent-challenge/pdfutil plus the standard library (regexp, strings, strconv, time, os, fmt, encoding/csv)
- NO other third-party libraries
- Exit with a non-zero status if parsing fails

**pdfutil API:**
- pdfutil.ExtractRows(path) ([][]string, error) — words grouped into visual rows and cells
- pdfutil.ExtractText(path) (string, error) — whole-document plain text
- pdfutil.WriteCSV(w, columns, rows) error — header plus rows as CSV

**IMPLEMENTATION STRATEGY:**
1. Try pdfutil.ExtractRows first and keep rows that look like transactions (date in the first cell).
2. Fall back to pdfutil.ExtractText with line-by-line regexp parsing for semi-structured pages.
3. Clean and normalize extracted data:
   - Parse dates correctly (handle DD/MM/YYYY and DD-MM-YYYY forms)
   - Strip currency formatting (remove commas, keep decimal points)
   - Leave genuinely missing cells empty
   - The printed header must match the expected columns exactly

**WORKING TEMPLATE:**
`+"```go"+`
//go:build ignore

package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/mahakitis/ai-agent-challenge/pdfutil"
)

var expectedColumns = []string{%s}

func parse(pdfPath string) ([][]string, error) {
	var data [][]string
	rows, err := pdfutil.ExtractRows(pdfPath)
	if err != nil {
		return nil, err
	}
	datePattern := regexp.MustCompile(`+"`"+`^\d{1,2}[/-]\d{1,2}[/-]\d{4}`+"`"+`)
	for _, row := range rows {
		if len(row) >= len(expectedColumns) && datePattern.MatchString(row[0]) {
			data = append(data, row[:len(expectedColumns)])
		}
	}
	return data, nil
}

func main() {
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
`+"```"+`

**Analysis Context:**
%s

**Target Bank:** %s
**Expected Columns:** %s

Generate complete, production-ready parser code that follows the exact template structure.`,
		quoteList(columns), analysis, target, cols)
}

func correctPrompt(code, errMsg string) string {
	return fmt.Sprintf(`The parser failed. Analyze the error and implement a fix using ONLY the allowed packages.

**ALLOWED PACKAGES ONLY:**
- github.com/mahakitis/ai-agent-challenge/pdfutil (PDF reading, CSV output)
- standard library: regexp, strings, strconv, time, os, fmt, encoding/csv

**CONTRACT REMINDERS:**
- Keep the "//go:build ignore" line and "package main"
- Keep func parse(pdfPath string) ([][]string, error)
- main prints the header row first, then data rows, as CSV on stdout

**ERROR ANALYSIS:**
Error: %s

**CURRENT CODE:**
%s

**COMMON FIXES NEEDED:**

1. If the column lists differ: print the expected header exactly, in order, and make sure every data row has the same number of cells.

2. If the shapes differ or no rows were extracted: the row filter is probably too strict. Loosen the date pattern, or fall back to pdfutil.ExtractText and parse line by line:

   lines := strings.Split(text, "\n")
   for _, line := range lines {
       if datePattern.MatchString(strings.TrimSpace(line)) {
           parts := splitPattern.Split(strings.TrimSpace(line), -1)
           ...
       }
   }

3. If values mismatch in numeric columns: strip thousands separators with strings.ReplaceAll(value, ",", "") and keep the reference's decimal rendering; do not reformat numbers that already match.

4. If the program crashes: check os.Args length before indexing, and return errors from parse instead of panicking.

Provide the corrected code that addresses the specific error while maintaining the same contract and requirements.`, errMsg, code)
}

func reflectPrompt(target string, attemptsMade int, finalError, finalCode string) string {
	return fmt.Sprintf(`Reflect on the parser generation process and identify what went wrong.

**Context:**
- Bank: %s
- Attempts Made: %d
- Final Error: %s
- Code Generated: %s

**Reflection Areas:**
1. **PDF Structure Understanding:**
   - Did we correctly identify the PDF layout?
   - Were our assumptions about table structure wrong?

2. **Extraction Strategy:**
   - Was the chosen extraction method appropriate?
   - Should we have tried different approaches?

3. **Error Patterns:**
   - What types of errors occurred repeatedly?
   - Are there systematic issues in our approach?

4. **Improvements for Next Time:**
   - What would you do differently?
   - What additional strategies should be tried?

Provide a detailed reflection that could help improve future parser generation attempts.`, target, attemptsMade, finalError, finalCode)
}

// quoteList renders column names as Go string literals for the template.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("%q", it)
	}
	return strings.Join(quoted, ", ")
}
