package pathx

import (
	"fmt"
	"io"
	"io/fs"
)

// Copy copies src to dst and returns the destination path actually
// written. A file source is copied as a single file; a directory source is
// copied recursively, preserving relative structure and file modes. A file
// destination that already exists fails with ErrDestinationExists unless
// overwrite is set; for directory sources, overwrite additionally allows
// merging into an existing destination tree.
func (t *Toolkit) Copy(src, dst Path, overwrite bool) (Path, error) {
	info, err := t.fsys.Stat(src.String())
	if err != nil {
		return Path{}, t.wrapNotFound(src, "stat", err)
	}

	t.logger.Debug("copying", "src", src.String(), "dst", dst.String())

	if info.IsDir() {
		if t.Exists(dst) && !overwrite {
			return Path{}, fmt.Errorf("%s: %w", dst, ErrDestinationExists)
		}
		if err := t.copyTree(src, dst, overwrite); err != nil {
			return Path{}, err
		}
		return dst, nil
	}
	return t.copyFile(src, dst, info.Mode(), overwrite)
}

// copyFile copies a single file. A destination that is an existing
// directory receives the file under its source name, as cp does.
func (t *Toolkit) copyFile(src, dst Path, mode fs.FileMode, overwrite bool) (Path, error) {
	if info, err := t.fsys.Stat(dst.String()); err == nil && info.IsDir() {
		dst = dst.Join(src.Name())
	}
	if t.Exists(dst) && !overwrite {
		return Path{}, fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	}

	r, err := t.fsys.Open(src.String())
	if err != nil {
		return Path{}, fmt.Errorf("opening %s: %w", src, err)
	}
	defer r.Close()

	w, err := t.fsys.Create(dst.String())
	if err != nil {
		return Path{}, fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		t.fsys.Remove(dst.String())
		return Path{}, fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := w.Close(); err != nil {
		return Path{}, fmt.Errorf("closing %s: %w", dst, err)
	}
	if err := t.fsys.Chmod(dst.String(), mode.Perm()); err != nil {
		return Path{}, fmt.Errorf("setting mode on %s: %w", dst, err)
	}
	return dst, nil
}

// copyTree recursively copies the directory src into dst.
func (t *Toolkit) copyTree(src, dst Path, overwrite bool) error {
	srcInfo, err := t.fsys.Stat(src.String())
	if err != nil {
		return t.wrapNotFound(src, "stat", err)
	}
	if err := t.fsys.MkdirAll(dst.String(), srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := t.fsys.ReadDir(src.String())
	if err != nil {
		return t.wrapNotFound(src, "reading directory", err)
	}
	for _, e := range entries {
		childSrc := src.Join(e.Name())
		childDst := dst.Join(e.Name())
		if e.IsDir() {
			if err := t.copyTree(childSrc, childDst, overwrite); err != nil {
				return err
			}
			continue
		}
		info, err := e.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", childSrc, err)
		}
		// Inside a merged tree, files from src overwrite files in dst.
		if _, err := t.copyFile(childSrc, childDst, info.Mode(), true); err != nil {
			return err
		}
	}
	return nil
}

// Move moves src to dst, like the Unix mv command, and returns the
// destination path. An existing file destination fails with
// ErrDestinationExists unless overwrite is set; an existing directory
// destination receives src under its source name.
func (t *Toolkit) Move(src, dst Path, overwrite bool) (Path, error) {
	if _, err := t.fsys.Stat(src.String()); err != nil {
		return Path{}, t.wrapNotFound(src, "stat", err)
	}
	if info, err := t.fsys.Stat(dst.String()); err == nil && info.IsDir() {
		dst = dst.Join(src.Name())
	}
	if t.Exists(dst) && !overwrite {
		return Path{}, fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	}

	t.logger.Debug("moving", "src", src.String(), "dst", dst.String())

	if err := t.fsys.Rename(src.String(), dst.String()); err != nil {
		return Path{}, fmt.Errorf("moving %s to %s: %w", src, dst, err)
	}
	return dst, nil
}
