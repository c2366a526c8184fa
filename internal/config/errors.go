package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoDocuments is returned when no document kind is selected.
	ErrNoDocuments = errors.New("no documents selected: choose banking, sponsors or links")

	// ErrUnknownDocument is returned when a document name is not recognized.
	// It wraps the name, so use errors.Is() to test for it.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// A concurrency of zero would mean no document is ever generated.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidFileName is returned when an output file name override is
	// not a bare file name ending in .pdf.
	ErrInvalidFileName = errors.New("invalid file name: must be a bare name ending in .pdf")

	// ErrInvalidLockTimeout is returned when the lock timeout is negative.
	// Use 0 to fail immediately when the output directory is locked.
	ErrInvalidLockTimeout = errors.New("invalid lock timeout: must be non-negative")
)
