package pathx

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Glob returns the paths under dir whose names match pattern, comparing
// case-insensitively. A pattern containing no "*" is wrapped as
// "*pattern*". Patterns may span several segments ("sub/*.txt"); each
// segment is matched against directory entry names with filepath.Match
// rules. Entry names are returned case-preserved; only the comparison is
// normalized. Results are sorted. The listing is a snapshot: it is finite
// and not restartable across directory mutation.
func (t *Toolkit) Glob(dir Path, pattern string) ([]Path, error) {
	if !strings.Contains(pattern, "*") {
		pattern = "*" + pattern + "*"
	}
	segments := strings.Split(filepath.ToSlash(pattern), "/")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("glob pattern %q has an empty segment", pattern)
		}
	}

	matches, err := t.glob(dir, segments)
	if err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].String() < matches[j].String()
	})
	return matches, nil
}

func (t *Toolkit) glob(dir Path, segments []string) ([]Path, error) {
	entries, err := t.fsys.ReadDir(dir.String())
	if err != nil {
		return nil, t.wrapNotFound(dir, "reading directory", err)
	}

	seg := strings.ToLower(segments[0])
	var matches []Path
	for _, e := range entries {
		ok, err := filepath.Match(seg, strings.ToLower(e.Name()))
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", segments[0], err)
		}
		if !ok {
			continue
		}
		child := dir.Join(e.Name())
		if len(segments) == 1 {
			matches = append(matches, child)
			continue
		}
		if !e.IsDir() {
			continue
		}
		sub, err := t.glob(child, segments[1:])
		if err != nil {
			return nil, err
		}
		matches = append(matches, sub...)
	}
	return matches, nil
}
