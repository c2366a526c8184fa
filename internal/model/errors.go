package model

import "errors"

// Validation errors returned by the Validate methods of the document types.
// Callers match them with errors.Is; the wrapped message names the field.
var (
	// ErrEmptyField is returned when a field that is rendered verbatim is empty.
	ErrEmptyField = errors.New("required field is empty")

	// ErrNumbering is returned when ranks or lead numbers are not the
	// sequence 1..n in dataset order.
	ErrNumbering = errors.New("records are not numbered sequentially")

	// ErrUnknownKind is returned by ParseKind for an unrecognised document name.
	ErrUnknownKind = errors.New("unknown document kind")

	// ErrUnknownLevel is returned when a verdict level or link status in a
	// dataset cannot be parsed.
	ErrUnknownLevel = errors.New("unknown level")
)
