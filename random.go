package pathx

import (
	"os"

	"github.com/google/uuid"
)

// IDGenerator abstracts random token generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// TempDir returns the configured temp directory, falling back to the
// system default.
func (t *Toolkit) TempDir() Path {
	if t.opts.TempDir != "" {
		return New(t.opts.TempDir)
	}
	return New(os.TempDir())
}

// RandomPath returns a syntactically valid path under dir whose name is a
// random token wrapped with the optional prefix and suffix. The zero Path
// places it in the temp directory. Tokens are random enough that
// collisions are negligible for practical directory sizes, but an existing
// candidate is re-rolled anyway.
func (t *Toolkit) RandomPath(dir Path, prefix, suffix string) Path {
	if dir.IsZero() {
		dir = t.TempDir()
	}
	candidate := dir.Join(prefix + t.idgen.New() + suffix)
	for t.Exists(candidate) {
		candidate = dir.Join(prefix + t.idgen.New() + suffix)
	}
	return candidate
}
