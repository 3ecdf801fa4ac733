package vartab

import (
	"fmt"
	"slices"
)

// Table holds headers, rows and per-column configuration. Rows are appended
// and never changed; widths are computed each time the table is printed.
//
// A Table is not safe for concurrent mutation. Printing does not modify it.
type Table struct {
	columns   []column
	rows      [][]any
	formats   []ColumnFormat
	precision []int
	padding   int
	oracle    Oracle
}

// New returns an empty table whose columns have the kinds in schema and
// the given headers. It fails with [ErrArityMismatch] if the header count
// differs from the schema length and with [ErrInvalidSchema] if the schema
// holds a value that is not one of the Kind constants.
//
//	t, err := vartab.New(
//		vartab.Schema{vartab.KindText, vartab.KindFloat, vartab.KindInt},
//		[]string{"Name", "Weight", "Age"},
//	)
func New(schema Schema, headers []string, opts ...Option) (*Table, error) {
	if len(headers) != len(schema) {
		return nil, arityError("headers", len(headers), len(schema))
	}
	for i, k := range schema {
		if _, ok := kindNames[k]; !ok {
			return nil, fmt.Errorf("%w: column %d (%q) has unknown kind %d", ErrInvalidSchema, i, headers[i], int(k))
		}
	}
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	cols := make([]column, len(schema))
	for i, k := range schema {
		cols[i] = column{header: headers[i], kind: k}
	}
	return &Table{
		columns: cols,
		padding: o.padding,
		oracle:  NewOracle(o.measurer, o.static),
	}, nil
}

// Columns returns the column count.
func (t *Table) Columns() int { return len(t.columns) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Headers returns a copy of the column headers.
func (t *Table) Headers() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.header
	}
	return out
}

// Schema returns a copy of the column kinds.
func (t *Table) Schema() Schema {
	out := make(Schema, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.kind
	}
	return out
}

// AddRow appends a row. The cell count must equal the column count and each
// cell must match its column's kind; otherwise the row is rejected and the
// table is unchanged.
func (t *Table) AddRow(cells ...any) error {
	row, err := t.checkRow(cells)
	if err != nil {
		return err
	}
	t.rows = append(t.rows, row)
	return nil
}

// checkRow validates cells and returns a private copy of them.
func (t *Table) checkRow(cells []any) ([]any, error) {
	if len(cells) != len(t.columns) {
		return nil, arityError("cells", len(cells), len(t.columns))
	}
	for i, v := range cells {
		if c := t.columns[i]; !c.kind.accepts(v) {
			return nil, fmt.Errorf("%w: column %d (%q) is %s, got %T", ErrTypeMismatch, i, c.header, c.kind, v)
		}
	}
	return slices.Clone(cells), nil
}

// SetColumnFormat replaces the format of every column. Pass no formats to
// reset all columns to [FormatAuto]. Any other count than the column count
// fails with [ErrArityMismatch] and leaves the current formats in place.
func (t *Table) SetColumnFormat(formats ...ColumnFormat) error {
	if len(formats) != 0 && len(formats) != len(t.columns) {
		return arityError("formats", len(formats), len(t.columns))
	}
	for _, f := range formats {
		if _, ok := columnFormatNames[f]; !ok {
			return fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
		}
	}
	t.formats = slices.Clone(formats)
	return nil
}

// SetColumnPrecision replaces the number of digits printed for floating
// point cells in every column. A negative entry keeps the default precision
// for that column. Pass nothing to unset. The count rules are those of
// [Table.SetColumnFormat].
func (t *Table) SetColumnPrecision(precision ...int) error {
	if len(precision) != 0 && len(precision) != len(t.columns) {
		return arityError("precisions", len(precision), len(t.columns))
	}
	t.precision = slices.Clone(precision)
	return nil
}

func (t *Table) format(i int) ColumnFormat {
	if len(t.formats) == 0 {
		return FormatAuto
	}
	return t.formats[i]
}

func (t *Table) prec(i int) int {
	if len(t.precision) == 0 {
		return -1
	}
	return t.precision[i]
}

// percent reports whether column i is a numeric column formatted as percent.
func (t *Table) percent(i int) bool {
	return t.columns[i].kind.Numeric() && t.format(i) == FormatPercent
}
