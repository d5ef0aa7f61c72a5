// Package tabular loads CSV reference tables and compares parser output
// against them.
//
// A Table keeps every cell as its raw string and infers per-column dtypes
// the way a dataframe library would: a column where every value parses as an
// integer is int64, a column of numbers with decimals or missing cells is
// float64, everything else is object. Comparison is dtype-sensitive: two
// tables are equal only when columns, shape, dtypes, and values all agree.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DType identifies the inferred type of a column.
type DType string

const (
	DTypeInt    DType = "int64"
	DTypeFloat  DType = "float64"
	DTypeObject DType = "object"
)

// Table is an in-memory tabular record set. Columns are ordered; every row
// has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Parse reads CSV data with a header row. Ragged records are rejected.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}
	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

// Load reads a CSV file from disk.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) {
	return len(t.Rows), len(t.Columns)
}

// Column returns the values of column i, one per row.
func (t *Table) Column(i int) []string {
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values
}

// DTypes infers the dtype of every column in order.
func (t *Table) DTypes() []DType {
	dtypes := make([]DType, len(t.Columns))
	for i := range t.Columns {
		dtypes[i] = inferDType(t.Column(i))
	}
	return dtypes
}

// inferDType classifies a column. Empty cells are treated as missing values:
// a numeric column with missing cells is float64, never int64, matching the
// convention of dataframe CSV readers.
func inferDType(values []string) DType {
	hasMissing := false
	allInt := true
	allFloat := true
	sawValue := false

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			hasMissing = true
			continue
		}
		sawValue = true
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allFloat = false
		}
	}

	switch {
	case !sawValue:
		// All-missing column.
		return DTypeFloat
	case allInt && !hasMissing:
		return DTypeInt
	case allFloat:
		return DTypeFloat
	default:
		return DTypeObject
	}
}

// Summary renders the structural overview fed to the analysis prompt:
// ordered column names, shape, per-column dtypes, the first few rows, and a
// mid-table slice when the table is long enough to have one.
func (t *Table) Summary() string {
	var b strings.Builder
	rows, cols := t.Shape()

	fmt.Fprintf(&b, "Columns (in order): %s\n", strings.Join(t.Columns, ", "))
	fmt.Fprintf(&b, "Shape: (%d, %d)\n", rows, cols)

	dtypes := t.DTypes()
	b.WriteString("Dtypes:\n")
	for i, col := range t.Columns {
		fmt.Fprintf(&b, "  %s: %s\n", col, dtypes[i])
	}

	b.WriteString("First rows:\n")
	for i := 0; i < len(t.Rows) && i < 5; i++ {
		fmt.Fprintf(&b, "  %s\n", strings.Join(t.Rows[i], " | "))
	}

	if rows > 10 {
		b.WriteString("Rows 10-12:\n")
		for i := 10; i < len(t.Rows) && i < 13; i++ {
			fmt.Fprintf(&b, "  %s\n", strings.Join(t.Rows[i], " | "))
		}
	}

	return b.String()
}

// valueEqual compares two cells under a column dtype. Numeric columns compare
// parsed values so "5.0" and "5.00" agree; missing matches only missing.
func valueEqual(dt DType, a, b string) bool {
	switch dt {
	case DTypeInt, DTypeFloat:
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		if a == "" || b == "" {
			return a == b
		}
		fa, errA := strconv.ParseFloat(a, 64)
		fb, errB := strconv.ParseFloat(b, 64)
		if errA != nil || errB != nil {
			return a == b
		}
		return fa == fb
	default:
		return a == b
	}
}
