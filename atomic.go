package pathx

import (
	"fmt"
	"io"
)

// AtomicWrite writes data to p through a temporary sibling and an atomic
// rename. Concurrent readers of p observe either the old content or the
// fully written new content, never a partial write.
func (t *Toolkit) AtomicWrite(p Path, data []byte) error {
	return t.AtomicWriteFunc(p, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// AtomicWriteFunc streams content produced by fn to a temporary sibling of
// p and renames it over p once fn and the close both succeed. The temp
// file is removed on every failure path, leaving p untouched. Concurrent
// writers to the same destination race at the temp level; the last rename
// wins.
func (t *Toolkit) AtomicWriteFunc(p Path, fn func(w io.Writer) error) error {
	// Temp sibling in the same directory so the rename stays atomic.
	tmp, err := p.AddSuffix(".tmp")
	if err != nil {
		return err
	}
	if t.Exists(tmp) {
		tmp, err = t.NextFreePath(tmp)
		if err != nil {
			return fmt.Errorf("choosing temp path for %s: %w", p, err)
		}
	}

	w, err := t.fsys.Create(tmp.String())
	if err != nil {
		return fmt.Errorf("creating temp file %s: %w", tmp, err)
	}

	success := false
	defer func() {
		if !success {
			t.fsys.Remove(tmp.String())
		}
	}()

	if err := fn(w); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing temp file %s: %w", tmp, err)
	}
	if err := t.fsys.Rename(tmp.String(), p.String()); err != nil {
		return fmt.Errorf("replacing %s: %w", p, err)
	}

	success = true
	return nil
}
