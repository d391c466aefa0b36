package pathx

import "errors"

// Sentinel errors for the failure conditions callers are expected to
// branch on. They are always wrapped with context, so match with errors.Is.
var (
	// ErrNoNumericSuffix is returned when an operation requires a numeric
	// last suffix (e.g. ".001") and the path has none.
	ErrNoNumericSuffix = errors.New("no numeric suffix")

	// ErrExhaustedSuffixSpace is returned when no free numeric suffix was
	// found within the probe limit.
	ErrExhaustedSuffixSpace = errors.New("numeric suffix space exhausted")

	// ErrInvalidSuffixFormat is returned for malformed suffix tokens, e.g.
	// a token missing its leading separator. Tokens are never silently
	// repaired.
	ErrInvalidSuffixFormat = errors.New("invalid suffix format")

	// ErrDestinationExists is returned by copy and move when the
	// destination exists and overwrite was not requested.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrDecode is returned when file content cannot be parsed.
	ErrDecode = errors.New("decode error")

	// ErrNotFound is returned when a path does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrDownload is returned when a fetch fails or the server responds
	// with a non-success status.
	ErrDownload = errors.New("download failed")

	// ErrCapabilityUnavailable is returned at call time when an operation
	// requires a capability that was not enabled in Options.
	ErrCapabilityUnavailable = errors.New("capability unavailable")
)
