package pgio

import "errors"

// Sentinel errors for pgio operations. Format-specific parse failures are
// wrapped around ErrParse with %w so callers can branch with errors.Is
// while still seeing the offending line and token in the message.
var (
	// ErrParse indicates malformed input; the wrapping error message names
	// the line, column and token that failed to parse.
	ErrParse = errors.New("pgio: parse error")

	// ErrDumpUnsupported indicates a format that this module can load but
	// never writes back out (.aut has no canonical dump form upstream).
	ErrDumpUnsupported = errors.New("pgio: dump not supported for this format")

	// ErrLoadUnsupported indicates a format this module only ever writes
	// (.dot has no loader: it exists to let humans look at a graph, not to
	// round-trip one).
	ErrLoadUnsupported = errors.New("pgio: load not supported for this format")
)
