// Package pdfutil is the small PDF-reading surface generated parsers build
// on: whole-document plain text, words grouped into visual rows, and a CSV
// writer for the output contract. Generated code is restricted to this
// package plus the standard library, which keeps the synthesis prompt short
// and the produced programs dependency-free.
package pdfutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Row-grouping tolerances, in PDF units. Fragments whose baselines are
// within rowTolerance belong to one visual row; a horizontal gap wider than
// cellGap starts a new cell, and anything wider than wordGap gets a space.
const (
	rowTolerance = 2.0
	cellGap      = 10.0
	wordGap      = 1.0
)

// ExtractText returns the plain text of the whole document.
func ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	var b strings.Builder
	if _, err := io.Copy(&b, reader); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return b.String(), nil
}

// ExtractRows returns the document's words grouped into visual rows, page by
// page. Fragments sharing a baseline form one row ordered left to right;
// wide horizontal gaps split a row into cells.
func ExtractRows(path string) ([][]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rows [][]string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows = append(rows, groupRows(page.Content().Text)...)
	}
	return rows, nil
}

// WriteCSV writes the header row followed by the data rows as CSV.
func WriteCSV(w io.Writer, columns []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// groupRows clusters positioned text fragments into rows of cells. PDF pages
// put the origin at the bottom left, so rows are emitted top to bottom by
// sorting Y descending.
func groupRows(texts []pdf.Text) [][]string {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > rowTolerance || diff < -rowTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]string
	var cells []string
	var cell strings.Builder
	lastY := sorted[0].Y
	lastEnd := sorted[0].X

	flushCell := func() {
		if cell.Len() > 0 {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
	}
	flushRow := func() {
		flushCell()
		if len(cells) > 0 {
			rows = append(rows, cells)
			cells = nil
		}
	}

	for i, t := range sorted {
		if t.S == "" {
			continue
		}
		newRow := t.Y < lastY-rowTolerance || t.Y > lastY+rowTolerance
		if i > 0 && newRow {
			flushRow()
			lastY = t.Y
			lastEnd = t.X
		}

		gap := t.X - lastEnd
		switch {
		case cell.Len() == 0:
			// First fragment of the cell.
		case gap > cellGap:
			flushCell()
		case gap > wordGap:
			cell.WriteByte(' ')
		}
		cell.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	flushRow()

	return rows
}
