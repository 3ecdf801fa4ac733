package vartab

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes a table layout as a document, for tools that keep
// presentation settings outside the code:
//
//	static_column_size: 8
//	cell_padding: 1
//	formats: [auto, scientific, fixed, percent]
//	precision: [1, 3, 3, 2]
type Config struct {
	StaticColumnSize *int           `yaml:"static_column_size,omitempty"`
	CellPadding      *int           `yaml:"cell_padding,omitempty"`
	Formats          []ColumnFormat `yaml:"formats,omitempty"`
	Precision        []int          `yaml:"precision,omitempty"`
}

// LoadConfig decodes a YAML config document. Unknown keys are rejected.
// An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode table config: %w", err)
	}
	return c, nil
}

// Options returns the construction options set in c.
func (c Config) Options() []Option {
	var opts []Option
	if c.StaticColumnSize != nil {
		opts = append(opts, WithStaticColumnSize(*c.StaticColumnSize))
	}
	if c.CellPadding != nil {
		opts = append(opts, WithCellPadding(*c.CellPadding))
	}
	return opts
}

// Apply sets the formats and precision listed in c. Lists left out of the
// document are not touched. Both lists are checked before either is applied.
func (t *Table) Apply(c Config) error {
	if n := len(c.Formats); n != 0 && n != len(t.columns) {
		return arityError("formats", n, len(t.columns))
	}
	if n := len(c.Precision); n != 0 && n != len(t.columns) {
		return arityError("precisions", n, len(t.columns))
	}
	if len(c.Formats) > 0 {
		if err := t.SetColumnFormat(c.Formats...); err != nil {
			return err
		}
	}
	if len(c.Precision) > 0 {
		return t.SetColumnPrecision(c.Precision...)
	}
	return nil
}
