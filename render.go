package vartab

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	ruleGlyph      = "\u2014" // EM DASH
	separatorGlyph = "\u250b" // BOX DRAWINGS HEAVY QUADRUPLE DASH VERTICAL
)

// Print lays out the table and writes it to w: a rule, the header line,
// a rule, one line per row and a closing rule. Headers are left-justified;
// data cells are right-justified in numeric columns and left-justified
// otherwise. w is never closed. Printing an unchanged table again produces
// identical output.
func (t *Table) Print(w io.Writer) error {
	l := t.Layout()
	rule := strings.Repeat(ruleGlyph, l.Total)

	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}

	header := make([]string, len(t.columns))
	aligns := make([]Alignment, len(t.columns))
	for i, c := range t.columns {
		header[i] = c.header
	}
	if err := t.drawRow(w, header, l.Widths, aligns); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}

	for i, c := range t.columns {
		aligns[i] = c.kind.Align()
	}
	cells := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, v := range row {
			cells[i] = formatCell(t.columns[i].kind, t.format(i), t.prec(i), v)
		}
		if err := t.drawRow(w, cells, l.Widths, aligns); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, rule)
	return err
}

// String returns the rendered table.
func (t *Table) String() string {
	var buf bytes.Buffer
	_ = t.Print(&buf) // bytes.Buffer writes do not fail
	return buf.String()
}

func (t *Table) drawRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	pad := strings.Repeat(" ", t.padding)
	var sb strings.Builder
	sb.WriteString(separatorGlyph)
	for i, width := range widths {
		sb.WriteString(pad)
		sb.WriteString(t.alignCell(cells[i], width, aligns[i]))
		sb.WriteString(pad)
		sb.WriteString(separatorGlyph)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// alignCell pads s to width cells. Content wider than the column is kept
// whole rather than truncated.
func (t *Table) alignCell(s string, width int, align Alignment) string {
	pad := width - t.oracle.Text(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
