package pathx

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Mtime returns the path's last modification time.
func (t *Toolkit) Mtime(p Path) (time.Time, error) {
	info, err := t.fsys.Stat(p.String())
	if err != nil {
		return time.Time{}, t.wrapNotFound(p, "stat", err)
	}
	return info.ModTime(), nil
}

// Size returns the file size in bytes.
func (t *Toolkit) Size(p Path) (int64, error) {
	info, err := t.fsys.Stat(p.String())
	if err != nil {
		return 0, t.wrapNotFound(p, "stat", err)
	}
	return info.Size(), nil
}

// SizeHuman returns the file size in human readable form, e.g. "4.1 kB".
func (t *Toolkit) SizeHuman(p Path) (string, error) {
	size, err := t.Size(p)
	if err != nil {
		return "", err
	}
	return humanize.Bytes(uint64(size)), nil
}
