package vartab

import (
	"iter"
)

// Rower provides the cells of one row. Implement it on a record type to add
// records with [AddItems].
type Rower interface {
	Row() []any
}

// AddItems appends the row of every item. Either all rows are added or, on
// the first invalid row, none are.
func AddItems[T Rower](t *Table, items ...T) error {
	return t.AddSeq(func(yield func([]any) bool) {
		for _, item := range items {
			if !yield(item.Row()) {
				return
			}
		}
	})
}

// AddSeq appends every row produced by seq. The sequence is fully consumed
// and validated before any row is stored; on error the table is unchanged.
func (t *Table) AddSeq(seq iter.Seq[[]any]) error {
	var (
		rows [][]any
		err  error
	)
	for cells := range seq {
		var row []any
		if row, err = t.checkRow(cells); err != nil {
			break
		}
		rows = append(rows, row)
	}
	if err != nil {
		return err
	}
	t.rows = append(t.rows, rows...)
	return nil
}

// AddChan appends every row received from ch until it is closed.
// If a row is invalid, the remaining rows are received and discarded until
// ch is closed, so the sender is never left blocked, and no row is added.
func (t *Table) AddChan(ch <-chan []any) error {
	err := t.AddSeq(chanToSeq(ch))
	if err != nil {
		for range ch {
		}
	}
	return err
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
