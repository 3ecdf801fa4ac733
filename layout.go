package vartab

// Layout is the computed geometry of a table.
type Layout struct {
	// Widths holds the content width of each column, excluding padding.
	Widths []int
	// Total is the full line width: one separator per column plus one,
	// and each column's width with padding on both sides.
	Total int
}

// Layout measures the headers and every row and returns the column widths.
// It is a pure function of the table's current contents and configuration.
func (t *Table) Layout() Layout {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = t.oracle.Text(c.header)
	}
	for _, row := range t.rows {
		for i, v := range row {
			if w := t.oracle.Width(t.columns[i].kind, v); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, c := range t.columns {
		if t.percent(i) {
			widths[i] = max(t.oracle.Text(c.header), percentWidth)
		}
	}
	return Layout{Widths: widths, Total: totalWidth(widths, t.padding)}
}

func totalWidth(widths []int, padding int) int {
	n := len(widths) + 1
	for _, w := range widths {
		n += w + 2*padding
	}
	return n
}
