// Package vartab prints tables of typed values with aligned, box-drawn
// borders.
//
// Each column has a fixed [Kind] declared up front in a [Schema]: text,
// integer, floating point, or opaque. Rows may mix kinds across columns but
// every cell in a column has that column's kind. The whole table is
// measured before anything is written, so column widths account for every
// row:
//
//	t, err := vartab.New(
//		vartab.Schema{vartab.KindText, vartab.KindFloat, vartab.KindInt},
//		[]string{"Name", "Weight", "Age"},
//	)
//	if err != nil { ... }
//	_ = t.AddRow("Cody", 180.2, 40)
//	_ = t.AddRow("David", 175.3, 38)
//	_ = t.Print(os.Stdout)
//
// Output:
//
//	————————————————————————————————
//	┋ Name  ┋ Weight        ┋ Age  ┋
//	————————————————————————————————
//	┋ Cody  ┋         180.2 ┋   40 ┋
//	┋ David ┋         175.3 ┋   38 ┋
//	————————————————————————————————
//
// # Width
//
// Text is measured in terminal cells, so East Asian wide characters count
// as two. Integer and floating point columns use generous estimates of the
// printed length rather than the exact string. Opaque values implementing
// [Sized] report their own width; all others use the static column size set
// with [WithStaticColumnSize]. The text measurer can be replaced with
// [WithMeasurer]; [EnvMeasurer] follows the terminal locale.
//
// # Number formatting
//
// [Table.SetColumnFormat] and [Table.SetColumnPrecision] configure numeric
// columns. [FormatPercent] prints the value times 100 with two decimals in a
// column six cells wide, or as wide as its header if that is wider. Integer columns ignore precision and the
// scientific and fixed formats.
//
// # Configuration
//
// [LoadConfig] reads the same settings from a YAML document; pass
// [Config.Options] to [New] and the config to [Table.Apply].
//
// # Errors
//
//   - [ErrArityMismatch]: a header, row, format or precision count differs
//     from the column count
//   - [ErrTypeMismatch]: a cell does not match its column kind
//   - [ErrUnsupportedFormat]: unknown column format
//   - [ErrInvalidOption]: negative padding or static size
//   - [ErrInvalidSchema]: a schema entry is not a known [Kind]
//
// Every error is reported before any output is written and leaves the table
// unchanged.
package vartab
