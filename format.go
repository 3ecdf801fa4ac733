package vartab

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColumnFormat controls how numbers in a column are printed.
// It is ignored for text and opaque columns.
type ColumnFormat int

const (
	FormatAuto       ColumnFormat = iota // shortest of %e and %f, like %g
	FormatScientific                     // d.ddde±dd
	FormatFixed                          // ddd.ddd
	FormatPercent                        // value×100 with two decimals, column width 6
)

// percentWidth fits "100.00".
const percentWidth = 6

// defaultPrecision matches the %g/%e/%f default.
const defaultPrecision = 6

var columnFormats = []ColumnFormat{FormatAuto, FormatScientific, FormatFixed, FormatPercent}

var columnFormatNames = map[ColumnFormat]string{
	FormatAuto:       "auto",
	FormatScientific: "scientific",
	FormatFixed:      "fixed",
	FormatPercent:    "percent",
}

// String returns the format name.
func (f ColumnFormat) String() string {
	if s, ok := columnFormatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("ColumnFormat(%d)", int(f))
}

// ColumnFormats returns all column formats.
func ColumnFormats() []ColumnFormat {
	out := make([]ColumnFormat, len(columnFormats))
	copy(out, columnFormats)
	return out
}

// ParseColumnFormat parses a format name. Matching is case-insensitive.
func ParseColumnFormat(s string) (ColumnFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range columnFormats {
		if columnFormatNames[f] == name {
			return f, nil
		}
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f ColumnFormat) MarshalText() ([]byte, error) {
	if _, ok := columnFormatNames[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *ColumnFormat) UnmarshalText(b []byte) error {
	v, err := ParseColumnFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f ColumnFormat) MarshalYAML() (any, error) {
	b, err := f.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *ColumnFormat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrUnsupportedFormat, node.Line)
	}
	return f.UnmarshalText([]byte(node.Value))
}

// formatCell renders a data cell. prec < 0 means the default precision.
func formatCell(k Kind, f ColumnFormat, prec int, v any) string {
	switch k {
	case KindText:
		return textOf(v)
	case KindInt:
		if f == FormatPercent {
			return strconv.FormatFloat(toFloat(v)*100, 'f', 2, 64)
		}
		return fmt.Sprint(v)
	case KindFloat:
		return formatFloat(f, prec, v)
	default:
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
}

func formatFloat(f ColumnFormat, prec int, v any) string {
	bits := 64
	if reflect.TypeOf(v).Kind() == reflect.Float32 {
		bits = 32
	}
	x := toFloat(v)
	if prec < 0 {
		prec = defaultPrecision
	}
	switch f {
	case FormatScientific:
		return strconv.FormatFloat(x, 'e', prec, bits)
	case FormatFixed:
		return strconv.FormatFloat(x, 'f', prec, bits)
	case FormatPercent:
		return strconv.FormatFloat(x*100, 'f', 2, 64)
	default:
		return strconv.FormatFloat(x, 'g', prec, bits)
	}
}
