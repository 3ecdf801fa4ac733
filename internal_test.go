package vartab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    any
		want int
	}{
		"zero":         {v: 0, want: 2},
		"one digit":    {v: 5, want: 3},
		"two digits":   {v: 30, want: 4},
		"four digits":  {v: 1234, want: 7},
		"negative":     {v: -1234, want: 7},
		"int8":         {v: int8(-128), want: 6},
		"uint16":       {v: uint16(65535), want: 8},
		"min int64":    {v: int64(math.MinInt64), want: 27},
		"max uint64":   {v: uint64(math.MaxUint64), want: 28},
		"six digits":   {v: 430061, want: 10},
		"seven digits": {v: -1000000, want: 11},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, intWidth(tt.v))
		})
	}
}

func TestFloatWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    float64
		want int
	}{
		"hundreds":    {v: 180.2, want: 13},
		"negative":    {v: -180.2, want: 13},
		"fraction":    {v: 0.5, want: 10},
		"small":       {v: 0.001548, want: 8},
		"zero":        {v: 0, want: 10},
		"tiny clamps": {v: 1e-300, want: 0},
		"nan":         {v: math.NaN(), want: 10},
		"inf":         {v: math.Inf(-1), want: 10},
		"thousands":   {v: 5432.1, want: 14},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, floatWidth(tt.v))
		})
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind Kind
		f    ColumnFormat
		prec int
		v    any
		want string
	}{
		"float auto":             {kind: KindFloat, f: FormatAuto, prec: -1, v: 180.2, want: "180.2"},
		"float auto small":       {kind: KindFloat, f: FormatAuto, prec: -1, v: 5.1e-05, want: "5.1e-05"},
		"float auto precision":   {kind: KindFloat, f: FormatAuto, prec: 1, v: 0.4525, want: "0.5"},
		"float32 auto":           {kind: KindFloat, f: FormatAuto, prec: -1, v: float32(180.2), want: "180.2"},
		"float scientific":       {kind: KindFloat, f: FormatScientific, prec: 3, v: 0.4525, want: "4.525e-01"},
		"float scientific dflt":  {kind: KindFloat, f: FormatScientific, prec: -1, v: 1.5, want: "1.500000e+00"},
		"float fixed":            {kind: KindFloat, f: FormatFixed, prec: 3, v: 0.051815, want: "0.052"},
		"float fixed default":    {kind: KindFloat, f: FormatFixed, prec: -1, v: 2.5, want: "2.500000"},
		"float percent":          {kind: KindFloat, f: FormatPercent, prec: 5, v: 0.05634, want: "5.63"},
		"float percent negative": {kind: KindFloat, f: FormatPercent, prec: -1, v: -0.5, want: "-50.00"},
		"int ignores fixed":      {kind: KindInt, f: FormatFixed, prec: 2, v: -1113, want: "-1113"},
		"int ignores scientific": {kind: KindInt, f: FormatScientific, prec: 2, v: uint8(7), want: "7"},
		"int percent":            {kind: KindInt, f: FormatPercent, prec: -1, v: 2, want: "200.00"},
		"text ignores format":    {kind: KindText, f: FormatPercent, prec: 2, v: "0.5", want: "0.5"},
		"opaque":                 {kind: KindOpaque, f: FormatFixed, prec: 2, v: []int{1, 2}, want: "[1 2]"},
		"opaque nil":             {kind: KindOpaque, f: FormatAuto, prec: -1, v: nil, want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatCell(tt.kind, tt.f, tt.prec, tt.v))
		})
	}
}

func TestAlignCellOverflowKeepsContent(t *testing.T) {
	t.Parallel()
	tbl := &Table{oracle: NewOracle(nil, 0)}
	assert.Equal(t, "123456", tbl.alignCell("123456", 4, AlignRight))
	assert.Equal(t, "  12", tbl.alignCell("12", 4, AlignRight))
	assert.Equal(t, "你 ", tbl.alignCell("你", 3, AlignLeft))
}

func TestTotalWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 15, totalWidth([]int{4, 4}, 1))
	assert.Equal(t, 11, totalWidth([]int{4, 4}, 0))
	assert.Equal(t, 1, totalWidth(nil, 3))
}

func TestChanToSeq(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToSeq(ch) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}
