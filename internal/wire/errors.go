package wire

import "errors"

// Decode failures are terminal for the call that produced them: the same
// input always yields the same error. Callers match with errors.Is.
var (
	// ErrInvalidHex reports malformed hex text handed to DecodeHex.
	ErrInvalidHex = errors.New("invalid hex")
	// ErrTruncatedInput reports a buffer shorter than a field demands.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrUnsupportedEncoding reports an unrecognized marker/flag byte pair.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	// ErrTrailingData reports unconsumed bytes after a complete transaction.
	ErrTrailingData = errors.New("trailing data")
)

// ErrorKind maps a decode error to a stable label for metrics and
// transport payloads.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidHex):
		return "invalid_hex"
	case errors.Is(err, ErrTruncatedInput):
		return "truncated_input"
	case errors.Is(err, ErrUnsupportedEncoding):
		return "unsupported_encoding"
	case errors.Is(err, ErrTrailingData):
		return "trailing_data"
	default:
		return "other"
	}
}
