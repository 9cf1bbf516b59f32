package api

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput reports that no usable data was supplied.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidFormat reports parsed data without a first row or columns.
	// It is a kind of ErrEmptyInput.
	ErrInvalidFormat = fmt.Errorf("%w: no columns in first row", ErrEmptyInput)
)

// ConversionError wraps an unexpected failure while emitting a table.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return "conversion failed"
	}
	return "conversion failed: " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error { return e.Err }

const (
	MsgEmptyInput    = "Please paste some table data first."
	MsgInvalidFormat = "Please paste valid table data with tabs as separators."
	MsgConversion    = "Error converting table. Please check your data format."
)

// UserMessage maps a conversion error to the guidance shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidFormat):
		return MsgInvalidFormat
	case errors.Is(err, ErrEmptyInput):
		return MsgEmptyInput
	default:
		// *ConversionError and anything unexpected.
		return MsgConversion
	}
}
