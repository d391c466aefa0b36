package pathx

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Options configures a Toolkit. Capability flags are checked at call time:
// a disabled capability makes the corresponding operation fail with
// ErrCapabilityUnavailable instead of being absent from the API.
type Options struct {
	// Download enables OrDownload.
	Download bool `toml:"download"`

	// SimilarPaths enables MostSimilar.
	SimilarPaths bool `toml:"similar_paths"`

	// DownloadTimeoutSeconds bounds a single fetch. Zero means no timeout.
	DownloadTimeoutSeconds int64 `toml:"download_timeout_seconds"`

	// TempDir is where RandomPath places paths when no directory is given.
	// Defaults to the system temp directory.
	TempDir string `toml:"temp_dir"`
}

// DownloadTimeout returns the configured fetch timeout as a duration.
func (o Options) DownloadTimeout() time.Duration {
	return time.Duration(o.DownloadTimeoutSeconds) * time.Second
}

// OptionsManager handles reading and writing Options.
type OptionsManager struct{}

// Read decodes Options from the provided reader.
func (m *OptionsManager) Read(r io.Reader) (*Options, error) {
	var opts Options
	if _, err := toml.NewDecoder(r).Decode(&opts); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return &opts, nil
}

// Write encodes Options to the provided writer.
func (m *OptionsManager) Write(w io.Writer, opts *Options) error {
	if err := toml.NewEncoder(w).Encode(opts); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	return nil
}

// OptionsFromFile reads Options from the specified file path.
func OptionsFromFile(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file: %w", err)
	}
	defer f.Close()

	m := &OptionsManager{}
	opts, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading options from %s: %w", path, err)
	}
	return opts, nil
}
