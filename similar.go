package pathx

import (
	"github.com/agext/levenshtein"
)

// MostSimilar returns the sibling of p whose name is most similar to p's
// name, by Levenshtein similarity. With recursive set, the whole subtree
// under p's parent is searched. The boolean is false when there are no
// candidates. Requires the similarpaths capability; fails with
// ErrCapabilityUnavailable at call time otherwise.
func (t *Toolkit) MostSimilar(p Path, recursive bool) (Path, bool, error) {
	if err := t.requireCapability("similarpaths", t.opts.SimilarPaths); err != nil {
		return Path{}, false, err
	}

	candidates, err := t.siblings(p.Parent(), recursive)
	if err != nil {
		return Path{}, false, err
	}

	best := Path{}
	bestScore := -1.0
	for _, c := range candidates {
		if c == p {
			continue
		}
		score := levenshtein.Match(p.Name(), c.Name(), nil)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < 0 {
		return Path{}, false, nil
	}
	return best, true, nil
}

// siblings lists the paths under dir, descending into subdirectories when
// recursive is set.
func (t *Toolkit) siblings(dir Path, recursive bool) ([]Path, error) {
	entries, err := t.fsys.ReadDir(dir.String())
	if err != nil {
		return nil, t.wrapNotFound(dir, "reading directory", err)
	}

	var paths []Path
	for _, e := range entries {
		child := dir.Join(e.Name())
		paths = append(paths, child)
		if recursive && e.IsDir() {
			sub, err := t.siblings(child, true)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		}
	}
	return paths, nil
}
