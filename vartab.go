package vartab

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrArityMismatch     = errors.New("arity mismatch")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUnsupportedFormat = errors.New("unsupported column format")
	ErrInvalidOption     = errors.New("invalid option")
	ErrInvalidSchema     = errors.New("invalid schema")
)

// Option configures a Table at construction.
type Option func(*options) error

type options struct {
	static   int
	padding  int
	measurer Measurer
}

func defaultOptions() options {
	return options{padding: 1, measurer: defaultMeasurer}
}

// WithStaticColumnSize sets the width used for opaque cells that cannot
// report their own width. Default: 0.
func WithStaticColumnSize(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("%w: static column size %d is negative", ErrInvalidOption, n)
		}
		o.static = n
		return nil
	}
}

// WithCellPadding sets the number of blanks on each side of every cell.
// Default: 1.
func WithCellPadding(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("%w: cell padding %d is negative", ErrInvalidOption, n)
		}
		o.padding = n
		return nil
	}
}

// WithMeasurer replaces the text width measurer. A nil measurer restores the
// default, which ignores the process locale.
func WithMeasurer(m Measurer) Option {
	return func(o *options) error {
		if m == nil {
			m = defaultMeasurer
		}
		o.measurer = m
		return nil
	}
}

func arityError(what string, got, want int) error {
	return fmt.Errorf("%w: %d %s for %d columns", ErrArityMismatch, got, what, want)
}
