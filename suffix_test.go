package pathx

import (
	"errors"
	"strings"
	"testing"
)

func TestPath_Suffixes(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		suffixes []string
		stem     string
	}{
		{"two format suffixes", "archive.tar.gz", []string{".tar", ".gz"}, "archive"},
		{"format plus numeric", "a.tar.gz.001", []string{".tar", ".gz", ".001"}, "a"},
		{"single suffix", "notes.txt", []string{".txt"}, "notes"},
		{"no separator", "README", nil, "README"},
		{"hidden file", ".bashrc", nil, ".bashrc"},
		{"hidden file with suffix", ".config.yaml", []string{".yaml"}, ".config"},
		{"punctuated segment ends scan", "foo.bar-baz.txt", []string{".txt"}, "foo.bar-baz"},
		{"empty segment ends scan", "archive..gz", []string{".gz"}, "archive."},
		{"digit-leading format suffix", "backup.7z", []string{".7z"}, "backup"},
		{"numeric only", "part.001", []string{".001"}, "part"},
		{"under a directory", "/data/in/archive.tar.gz", []string{".tar", ".gz"}, "archive"},
		{"trailing separator", "weird.", nil, "weird."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.path)

			got := p.Suffixes()
			if len(got) != len(tt.suffixes) {
				t.Fatalf("Suffixes() = %v, want %v", got, tt.suffixes)
			}
			for i := range got {
				if got[i] != tt.suffixes[i] {
					t.Errorf("Suffixes()[%d] = %q, want %q", i, got[i], tt.suffixes[i])
				}
			}

			if stem := p.Stem(); stem != tt.stem {
				t.Errorf("Stem() = %q, want %q", stem, tt.stem)
			}

			// Round-trip invariant: stem plus suffixes reproduces the name.
			rebuilt := p.Stem() + strings.Join(p.Suffixes(), "")
			if rebuilt != p.Name() {
				t.Errorf("Stem()+Suffixes() = %q, want %q", rebuilt, p.Name())
			}
		})
	}
}

func TestPath_NumericSuffix(t *testing.T) {
	tests := []struct {
		path  string
		value int
		ok    bool
	}{
		{"part.rar.001", 1, true},
		{"part.042", 42, true},
		{"archive.tar.gz", 0, false},
		{"README", 0, false},
		{"myfile.x.001.feather", 0, false}, // numeric not last
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			n, ok := New(tt.path).NumericSuffix()
			if ok != tt.ok || n != tt.value {
				t.Errorf("NumericSuffix() = (%d, %v), want (%d, %v)", n, ok, tt.value, tt.ok)
			}
		})
	}
}

func TestPath_WithSuffix(t *testing.T) {
	t.Run("replaces only the last suffix", func(t *testing.T) {
		got, err := New("file.tar.gz").WithSuffix(".bz2")
		if err != nil {
			t.Fatalf("WithSuffix() error = %v", err)
		}
		if got.Name() != "file.tar.bz2" {
			t.Errorf("Name() = %q, want %q", got.Name(), "file.tar.bz2")
		}
	})

	t.Run("appends when there is no suffix", func(t *testing.T) {
		got, err := New("README").WithSuffix(".md")
		if err != nil {
			t.Fatalf("WithSuffix() error = %v", err)
		}
		if got.Name() != "README.md" {
			t.Errorf("Name() = %q, want %q", got.Name(), "README.md")
		}
	})

	t.Run("rejects a token without separator", func(t *testing.T) {
		_, err := New("file.txt").WithSuffix("md")
		if !errors.Is(err, ErrInvalidSuffixFormat) {
			t.Errorf("WithSuffix() error = %v, want ErrInvalidSuffixFormat", err)
		}
	})
}

func TestPath_WithSuffixes(t *testing.T) {
	t.Run("replaces the whole sequence", func(t *testing.T) {
		got, err := New("file.suffix1.suffix2").WithSuffixes([]string{".mkv", ".r00"})
		if err != nil {
			t.Fatalf("WithSuffixes() error = %v", err)
		}
		if got.Name() != "file.mkv.r00" {
			t.Errorf("Name() = %q, want %q", got.Name(), "file.mkv.r00")
		}
	})

	t.Run("is idempotent with the parsed suffixes", func(t *testing.T) {
		for _, name := range []string{"a.tar.gz.001", "README", ".bashrc", "notes.txt"} {
			p := New("/data", name)
			got, err := p.WithSuffixes(p.Suffixes())
			if err != nil {
				t.Fatalf("WithSuffixes() error = %v", err)
			}
			if got != p {
				t.Errorf("WithSuffixes(Suffixes()) = %q, want %q", got, p)
			}
		}
	})

	t.Run("rejects malformed tokens instead of repairing", func(t *testing.T) {
		for _, tokens := range [][]string{
			{"gz"},
			{".tar", "gz"},
			{"."},
			{".a.b"},
			{".bad-seg"},
			{""},
		} {
			if _, err := New("file.txt").WithSuffixes(tokens); !errors.Is(err, ErrInvalidSuffixFormat) {
				t.Errorf("WithSuffixes(%q) error = %v, want ErrInvalidSuffixFormat", tokens, err)
			}
		}
	})
}

func TestPath_AddAndStripSuffixes(t *testing.T) {
	t.Run("adds as last suffix", func(t *testing.T) {
		got, err := New("script.py").AddSuffix(".bak")
		if err != nil {
			t.Fatalf("AddSuffix() error = %v", err)
		}
		if got.Name() != "script.py.bak" {
			t.Errorf("Name() = %q, want %q", got.Name(), "script.py.bak")
		}
	})

	t.Run("strips all suffixes", func(t *testing.T) {
		got := New("/x/file.tar.gz.001").WithoutSuffixes()
		if got.String() != "/x/file" {
			t.Errorf("WithoutSuffixes() = %q, want %q", got, "/x/file")
		}
	})
}

func TestPath_IncrementNumericSuffix(t *testing.T) {
	tests := []struct {
		path string
		step int
		want string
	}{
		{"part.rar.009", 1, "part.rar.010"},
		{"part.rar.099", 1, "part.rar.100"},
		{"part.rar.001", 1, "part.rar.002"},
		{"clip.0001", 1, "clip.0002"},
		{"part.7", 1, "part.8"},
		{"part.9", 1, "part.10"},
		{"part.rar.001", 5, "part.rar.006"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := New(tt.path).IncrementNumericSuffix(tt.step)
			if err != nil {
				t.Fatalf("IncrementNumericSuffix() error = %v", err)
			}
			if got.Name() != tt.want {
				t.Errorf("IncrementNumericSuffix() = %q, want %q", got.Name(), tt.want)
			}
		})
	}

	t.Run("fails without a numeric suffix", func(t *testing.T) {
		if _, err := New("archive.tar.gz").IncrementNumericSuffix(1); !errors.Is(err, ErrNoNumericSuffix) {
			t.Errorf("IncrementNumericSuffix() error = %v, want ErrNoNumericSuffix", err)
		}
	})
}

func TestPath_NextFreeNumeric(t *testing.T) {
	existsIn := func(names ...string) func(Path) bool {
		set := make(map[string]bool, len(names))
		for _, n := range names {
			set[n] = true
		}
		return func(p Path) bool { return set[p.Name()] }
	}

	t.Run("skips occupied slots", func(t *testing.T) {
		got, err := New("part.rar.001").NextFreeNumeric(existsIn("part.rar.001", "part.rar.002"))
		if err != nil {
			t.Fatalf("NextFreeNumeric() error = %v", err)
		}
		if got.Name() != "part.rar.003" {
			t.Errorf("NextFreeNumeric() = %q, want %q", got.Name(), "part.rar.003")
		}
	})

	t.Run("starts at .001 without a numeric suffix", func(t *testing.T) {
		got, err := New("archive.rar").NextFreeNumeric(existsIn())
		if err != nil {
			t.Fatalf("NextFreeNumeric() error = %v", err)
		}
		if got.Name() != "archive.rar.001" {
			t.Errorf("NextFreeNumeric() = %q, want %q", got.Name(), "archive.rar.001")
		}
	})

	t.Run("fails when the space is exhausted", func(t *testing.T) {
		_, err := New("part.001").NextFreeNumeric(func(Path) bool { return true })
		if !errors.Is(err, ErrExhaustedSuffixSpace) {
			t.Errorf("NextFreeNumeric() error = %v, want ErrExhaustedSuffixSpace", err)
		}
	})
}
