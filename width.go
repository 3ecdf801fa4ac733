package vartab

import (
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mattn/go-runewidth"
)

// Measurer reports the number of terminal cells a string occupies.
// *runewidth.Condition satisfies it.
type Measurer interface {
	StringWidth(s string) int
}

// Sized lets an opaque value report its own display width.
type Sized interface {
	DisplayWidth() int
}

// defaultMeasurer treats East Asian ambiguous runes as narrow regardless of
// the process locale, so output is reproducible.
var defaultMeasurer Measurer = &runewidth.Condition{StrictEmojiNeutral: true}

// EnvMeasurer returns a measurer configured from the environment as it is
// at the time of the call. RUNEWIDTH_EASTASIAN=1 or 0 forces ambiguous runes
// wide or narrow; otherwise LC_ALL, LC_CTYPE and LANG decide.
func EnvMeasurer() Measurer {
	eastAsian := runewidth.IsEastAsian()
	if env := os.Getenv("RUNEWIDTH_EASTASIAN"); env != "" {
		eastAsian = env == "1"
	}
	return &runewidth.Condition{EastAsianWidth: eastAsian, StrictEmojiNeutral: true}
}

// Oracle estimates the printed width of cell values.
type Oracle struct {
	text   Measurer
	static int
}

// NewOracle returns an oracle measuring text with m and falling back to
// static for opaque values that cannot report their own width.
func NewOracle(m Measurer, static int) Oracle {
	if m == nil {
		m = defaultMeasurer
	}
	return Oracle{text: m, static: static}
}

// Text returns the display width of s.
func (o Oracle) Text(s string) int {
	return o.text.StringWidth(s)
}

// Width returns the number of cells reserved for v in a column of kind k.
// Numeric widths are estimates with room for separators and a sign, not
// the exact length of the printed value.
func (o Oracle) Width(k Kind, v any) int {
	switch k {
	case KindText:
		return o.Text(textOf(v))
	case KindInt:
		return intWidth(v)
	case KindFloat:
		return floatWidth(toFloat(v))
	default:
		if s, ok := v.(Sized); ok && !isNilPointer(v) {
			return max(s.DisplayWidth(), 0)
		}
		return o.static
	}
}

// intWidth is digits + digits/3 + 2; zero is 2.
func intWidth(v any) int {
	n := magnitude(v)
	if n == 0 {
		return 2
	}
	digits := 0
	for ; n > 0; n /= 10 {
		digits++
	}
	return digits + digits/3 + 2
}

// floatWidth is ceil(log10(|f|)) + 1 + 4 + 5: integer digits, the point,
// three decimals with slack, and padding.
func floatWidth(f float64) int {
	a := math.Abs(f)
	mag := 0.0
	if a != 0 && !math.IsInf(a, 0) && !math.IsNaN(a) {
		mag = math.Ceil(math.Log10(a))
	}
	return max(int(mag)+1+4+5, 0)
}

// magnitude returns |v| for any integer kind without overflowing on the
// minimum signed value.
func magnitude(v any) uint64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return uint64(-(n + 1)) + 1
		}
		return uint64(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	default:
		return 0
	}
}

// textOf renders a text cell. fmt recovers from a nil receiver in String
// and prints <nil>.
func textOf(v any) string {
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprint(v)
	}
	return reflect.ValueOf(v).String()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func toFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return 0
	}
}
