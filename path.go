package pathx

import "path/filepath"

// Path is an immutable filesystem path value. It never touches the
// filesystem itself; all pure path and suffix algebra lives on Path, while
// operations that read or write disk live on Toolkit. Every "modification"
// returns a new Path, so values are freely shareable across goroutines.
type Path struct {
	raw string
}

// New creates a Path by joining the given segments using the host
// platform's separator conventions. Segments are cleaned the way
// filepath.Join cleans them.
func New(segments ...string) Path {
	return Path{raw: filepath.Join(segments...)}
}

// String returns the path as a string.
func (p Path) String() string {
	return p.raw
}

// IsZero reports whether the path is the empty value.
func (p Path) IsZero() bool {
	return p.raw == ""
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(p.raw)
}

// Name returns the final path component.
func (p Path) Name() string {
	if p.raw == "" {
		return ""
	}
	return filepath.Base(p.raw)
}

// Parent returns the path of the containing directory.
func (p Path) Parent() Path {
	if p.raw == "" {
		return p
	}
	return Path{raw: filepath.Dir(p.raw)}
}

// Join appends one or more segments to the path.
func (p Path) Join(segments ...string) Path {
	parts := append([]string{p.raw}, segments...)
	return Path{raw: filepath.Join(parts...)}
}

// WithName returns a path with the final component replaced.
func (p Path) WithName(name string) Path {
	return p.Parent().Join(name)
}

// WithParent returns the path relocated under a different directory,
// keeping the final component.
func (p Path) WithParent(dir Path) Path {
	return dir.Join(p.Name())
}

// WithStem returns a path with a new stem, retaining only the last suffix.
func (p Path) WithStem(stem string) Path {
	return p.WithName(stem + p.Suffix())
}
