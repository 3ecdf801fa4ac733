package vartab

import (
	"fmt"
	"reflect"
)

// Kind classifies the Go type of a column. It decides which width heuristic
// applies to the column's cells and how data cells are justified.
type Kind int

const (
	KindText   Kind = iota // strings and fmt.Stringer values, left-justified
	KindInt                // signed and unsigned integers, right-justified
	KindFloat              // float32 and float64, right-justified
	KindOpaque             // anything else, left-justified
)

var kindNames = map[Kind]string{
	KindText:   "text",
	KindInt:    "int",
	KindFloat:  "float",
	KindOpaque: "opaque",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Numeric reports whether cells of this kind are numbers.
func (k Kind) Numeric() bool { return k == KindInt || k == KindFloat }

// Align returns the justification used for data cells of this kind.
func (k Kind) Align() Alignment {
	if k.Numeric() {
		return AlignRight
	}
	return AlignLeft
}

// Alignment controls cell justification within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Schema is the ordered list of column kinds declared for a table.
// Its length is the table's column count.
type Schema []Kind

// KindOf classifies v. Values implementing fmt.Stringer are text.
func KindOf(v any) Kind {
	if _, ok := v.(fmt.Stringer); ok {
		return KindText
	}
	if v == nil {
		return KindOpaque
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return KindText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	default:
		return KindOpaque
	}
}

// SchemaOf infers a schema from a sample row.
//
//	schema := vartab.SchemaOf("Fred", 193.4, 35, "Sam")
func SchemaOf(values ...any) Schema {
	s := make(Schema, len(values))
	for i, v := range values {
		s[i] = KindOf(v)
	}
	return s
}

// accepts reports whether v can be stored in a column of kind k.
func (k Kind) accepts(v any) bool {
	if k == KindOpaque {
		return true
	}
	return KindOf(v) == k
}

// column is the static descriptor for one column, fixed at construction.
type column struct {
	header string
	kind   Kind
}
