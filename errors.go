package objectid

import "fmt"

// FormatError reports input to a decode function that is not a well-formed
// encoded ObjectID: not exactly 12 bytes, or not exactly 24 hex characters.
// It is always recoverable by the caller and never retried internally.
type FormatError struct {
	// Input is the offending input when it was textual, empty otherwise.
	Input string
	// Reason describes what was wrong with the input.
	Reason string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return "objectid: " + e.Reason
	}
	return fmt.Sprintf("objectid: %s: %q", e.Reason, e.Input)
}

// FingerprintError reports an unrecoverable fault while deriving the
// process fingerprint. The expected sub-failures (interface enumeration,
// process-id retrieval) are absorbed by random substitution and never
// surface as errors; a FingerprintError means the generator could not be
// initialized at all and must not be used.
type FingerprintError struct {
	Err error
}

func (e *FingerprintError) Error() string {
	return "objectid: fingerprint initialization: " + e.Err.Error()
}

func (e *FingerprintError) Unwrap() error { return e.Err }
