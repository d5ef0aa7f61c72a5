package tabular

import (
	"fmt"
	"slices"
	"strings"
)

// Diff is the outcome of comparing a parser result against the reference.
type Diff struct {
	Match  bool
	Report string
}

// Compare checks result against expected for exact equality: same columns in
// the same order, same shape, same dtypes, same values.
//
// The report always lists both column sets and both shapes. Dtypes and
// per-column first-row values are included only when the columns match
// exactly; a "Mismatch in column 'X'" line is appended for every shared
// column whose stringified first-row values differ.
func Compare(result, expected *Table) Diff {
	var b strings.Builder

	colsEqual := slices.Equal(result.Columns, expected.Columns)
	rRows, rCols := result.Shape()
	eRows, eCols := expected.Shape()
	shapeEqual := rRows == eRows && rCols == eCols

	fmt.Fprintf(&b, "Result columns: %v\n", result.Columns)
	fmt.Fprintf(&b, "Expected columns: %v\n", expected.Columns)
	fmt.Fprintf(&b, "Result shape: (%d, %d)\n", rRows, rCols)
	fmt.Fprintf(&b, "Expected shape: (%d, %d)\n", eRows, eCols)

	match := colsEqual && shapeEqual

	if colsEqual {
		rTypes := result.DTypes()
		eTypes := expected.DTypes()
		fmt.Fprintf(&b, "Result dtypes: %v\n", rTypes)
		fmt.Fprintf(&b, "Expected dtypes: %v\n", eTypes)
		if !slices.Equal(rTypes, eTypes) {
			match = false
		}

		for i, col := range expected.Columns {
			rFirst := firstValue(result, i)
			eFirst := firstValue(expected, i)
			fmt.Fprintf(&b, "Column %q first row: result=%q expected=%q\n", col, rFirst, eFirst)
			if rFirst != eFirst {
				fmt.Fprintf(&b, "Mismatch in column '%s'\n", col)
			}
		}

		if match && !cellsEqual(result, expected, eTypes) {
			match = false
		}
	}

	return Diff{Match: match, Report: strings.TrimRight(b.String(), "\n")}
}

func firstValue(t *Table, col int) string {
	if len(t.Rows) == 0 {
		return ""
	}
	return t.Rows[0][col]
}

// cellsEqual assumes identical shapes.
func cellsEqual(result, expected *Table, dtypes []DType) bool {
	for r := range expected.Rows {
		for c := range expected.Columns {
			if !valueEqual(dtypes[c], result.Rows[r][c], expected.Rows[r][c]) {
				return false
			}
		}
	}
	return true
}
