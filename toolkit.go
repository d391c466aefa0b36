package pathx

import (
	"errors"
	"fmt"
	"io/fs"
)

// Toolkit is the orchestration layer for the effectful path operations:
// globbing, copying, downloading, atomic writes, random paths. Pure suffix
// algebra lives on Path; everything here goes through the injected
// Filesystem so it can run against an in-memory implementation in tests.
type Toolkit struct {
	opts    Options
	fsys    Filesystem
	fetcher Fetcher
	logger  Logger
	idgen   IDGenerator
}

// NewToolkit creates a Toolkit with the provided dependencies.
// A nil fsys uses the real filesystem, a nil logger discards output, a nil
// idgen uses random UUIDs, and a nil fetcher gets a grab-backed HTTP
// fetcher when the download capability is enabled.
func NewToolkit(opts Options, fsys Filesystem, fetcher Fetcher, logger Logger, idgen IDGenerator) *Toolkit {
	if fsys == nil {
		fsys = NewOSFilesystem()
	}
	if logger == nil {
		logger = NewNopLogger()
	}
	if idgen == nil {
		idgen = UUIDGenerator{}
	}
	if fetcher == nil && opts.Download {
		fetcher = NewGrabFetcher()
	}
	return &Toolkit{
		opts:    opts,
		fsys:    fsys,
		fetcher: fetcher,
		logger:  logger,
		idgen:   idgen,
	}
}

// Default returns a Toolkit on the real filesystem with all capabilities
// enabled.
func Default() *Toolkit {
	return NewToolkit(Options{Download: true, SimilarPaths: true}, nil, nil, nil, nil)
}

// requireCapability gates an operation on an Options flag.
func (t *Toolkit) requireCapability(name string, enabled bool) error {
	if !enabled {
		return fmt.Errorf("%s: %w", name, ErrCapabilityUnavailable)
	}
	return nil
}

// Exists reports whether the path exists.
func (t *Toolkit) Exists(p Path) bool {
	_, err := t.fsys.Stat(p.String())
	return err == nil
}

// NextFreePath returns the first numeric-suffixed sibling of p that does
// not exist on the filesystem. See Path.NextFreeNumeric for the probing
// rules.
func (t *Toolkit) NextFreePath(p Path) (Path, error) {
	return p.NextFreeNumeric(t.Exists)
}

// LastNumericPath returns the sibling with the same base name carrying the
// highest existing numeric suffix, e.g. "somefile.rar.004" when .001 and
// .004 exist. Fails with ErrNotFound when no numeric sibling exists.
func (t *Toolkit) LastNumericPath(p Path) (Path, error) {
	base := p
	if _, ok := p.NumericSuffix(); ok {
		tokens := p.Suffixes()
		var err error
		base, err = p.WithSuffixes(tokens[:len(tokens)-1])
		if err != nil {
			return Path{}, err
		}
	}

	entries, err := t.fsys.ReadDir(base.Parent().String())
	if err != nil {
		return Path{}, t.wrapNotFound(base.Parent(), "reading directory", err)
	}

	best := Path{}
	bestN := -1
	prefix := base.Name() + string(separator)
	for _, e := range entries {
		name := e.Name()
		if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
			continue
		}
		if !isDigits(name[len(prefix):]) {
			continue
		}
		candidate := base.WithName(name)
		if n, ok := candidate.NumericSuffix(); ok && n > bestN {
			best = candidate
			bestN = n
		}
	}
	if bestN < 0 {
		return Path{}, fmt.Errorf("no numeric sibling of %s: %w", p, ErrNotFound)
	}
	return best, nil
}

// wrapNotFound translates a filesystem miss into ErrNotFound, keeping
// other errors intact.
func (t *Toolkit) wrapNotFound(p Path, op string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s %s: %w", op, p, ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", op, p, err)
}
