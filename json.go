package pathx

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadJSON reads the full content of p and unmarshals it into v. A
// missing file fails with ErrNotFound, malformed content with ErrDecode.
func (t *Toolkit) ReadJSON(p Path, v any) error {
	r, err := t.fsys.Open(p.String())
	if err != nil {
		return t.wrapNotFound(p, "opening", err)
	}
	defer r.Close()

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %v: %w", p, err, ErrDecode)
	}
	return nil
}

// WriteJSON marshals v and writes it to p atomically.
func (t *Toolkit) WriteJSON(p Path, v any) error {
	return t.AtomicWriteFunc(p, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}
