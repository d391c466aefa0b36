package pathx_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"pathx"
	"pathx/internal/testutil"
)

func TestToolkit_AtomicWrite(t *testing.T) {
	t.Run("writes new content", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddDirectory("/data")
		tk := newToolkit(pathx.Options{}, fsys, nil)

		if err := tk.AtomicWrite(pathx.New("/data/out.txt"), []byte("hello")); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}
		if got, ok := fsys.ReadFile("/data/out.txt"); !ok || !bytes.Equal(got, []byte("hello")) {
			t.Errorf("content = %q, ok = %v", got, ok)
		}
	})

	t.Run("replaces existing content", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddFile("/data/out.txt", []byte("old"))
		tk := newToolkit(pathx.Options{}, fsys, nil)

		if err := tk.AtomicWrite(pathx.New("/data/out.txt"), []byte("new")); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}
		if got, _ := fsys.ReadFile("/data/out.txt"); !bytes.Equal(got, []byte("new")) {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddDirectory("/data")
		tk := newToolkit(pathx.Options{}, fsys, nil)

		if err := tk.AtomicWrite(pathx.New("/data/out.txt"), []byte("hello")); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}
		for _, p := range fsys.Paths() {
			if strings.Contains(p, ".tmp") {
				t.Errorf("temp file left behind: %s", p)
			}
		}
	})

	t.Run("interrupted write leaves destination unchanged", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddFile("/data/out.txt", []byte("original"))
		tk := newToolkit(pathx.Options{}, fsys, nil)

		boom := errors.New("interrupted")
		err := tk.AtomicWriteFunc(pathx.New("/data/out.txt"), func(w io.Writer) error {
			w.Write([]byte("partial"))
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("AtomicWriteFunc() error = %v, want wrapped %v", err, boom)
		}

		if got, _ := fsys.ReadFile("/data/out.txt"); !bytes.Equal(got, []byte("original")) {
			t.Errorf("destination = %q, want untouched %q", got, "original")
		}
		for _, p := range fsys.Paths() {
			if strings.Contains(p, ".tmp") {
				t.Errorf("temp file left behind: %s", p)
			}
		}
	})

	t.Run("sidesteps an occupied temp path", func(t *testing.T) {
		fsys := testutil.NewMockFilesystem()
		fsys.AddFile("/data/out.txt.tmp", []byte("squatter"))
		tk := newToolkit(pathx.Options{}, fsys, nil)

		if err := tk.AtomicWrite(pathx.New("/data/out.txt"), []byte("hello")); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}
		if got, ok := fsys.ReadFile("/data/out.txt"); !ok || !bytes.Equal(got, []byte("hello")) {
			t.Errorf("content = %q, ok = %v", got, ok)
		}
		if got, _ := fsys.ReadFile("/data/out.txt.tmp"); !bytes.Equal(got, []byte("squatter")) {
			t.Errorf("unrelated temp file changed to %q", got)
		}
	})
}
