package pathx

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/cavaliercoder/grab"
)

// Fetcher performs a blocking fetch of a remote resource to a local file.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL, dst string) error
}

// GrabFetcher fetches over HTTP using the grab download client.
type GrabFetcher struct {
	client *grab.Client
}

// NewGrabFetcher creates a Fetcher backed by a default grab client.
func NewGrabFetcher() *GrabFetcher {
	return &GrabFetcher{client: grab.NewClient()}
}

// Fetch downloads rawURL to dst. Non-success HTTP responses surface as
// errors from the transfer.
func (f *GrabFetcher) Fetch(ctx context.Context, rawURL, dst string) error {
	req, err := grab.NewRequest(dst, rawURL)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	req = req.WithContext(ctx)

	resp := f.client.Do(req)
	if err := resp.Err(); err != nil {
		return fmt.Errorf("transferring %s: %w", rawURL, err)
	}
	return nil
}

var _ Fetcher = (*GrabFetcher)(nil)

// OrDownload returns p if it already exists locally, otherwise fetches
// rawURL and writes it to p through a temporary sibling and a rename, so a
// partially transferred file is never visible at the destination. When p
// is an existing directory, the file name is inferred from the URL path.
// Requires the download capability; fails with ErrCapabilityUnavailable
// at call time otherwise, and with ErrDownload on any fetch failure.
func (t *Toolkit) OrDownload(p Path, rawURL string) (Path, error) {
	if err := t.requireCapability("download", t.opts.Download); err != nil {
		return Path{}, err
	}

	dst := p
	if info, err := t.fsys.Stat(p.String()); err == nil && info.IsDir() {
		name, err := fileNameFromURL(rawURL)
		if err != nil {
			return Path{}, err
		}
		dst = p.Join(name)
	}
	if t.Exists(dst) {
		t.logger.Debug("download skipped, path exists", "path", dst.String())
		return dst, nil
	}

	ctx := context.Background()
	if timeout := t.opts.DownloadTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tmp := t.RandomPath(dst.Parent(), "."+dst.Name()+".", ".part")
	t.logger.Info("downloading", "url", rawURL, "dst", dst.String())

	if err := t.fetcher.Fetch(ctx, rawURL, tmp.String()); err != nil {
		t.fsys.Remove(tmp.String())
		return Path{}, fmt.Errorf("fetching %s: %v: %w", rawURL, err, ErrDownload)
	}
	if err := t.fsys.Rename(tmp.String(), dst.String()); err != nil {
		t.fsys.Remove(tmp.String())
		return Path{}, fmt.Errorf("placing download at %s: %w", dst, err)
	}
	return dst, nil
}

// fileNameFromURL extracts the final path component of a URL.
func fileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing url %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("could not determine file name from url %q", rawURL)
	}
	return name, nil
}
