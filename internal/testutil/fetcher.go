package testutil

import (
	"context"
	"fmt"
	"sync"
)

// StubFetcher is a pathx.Fetcher that writes a fixed body into a
// MockFilesystem instead of performing network I/O.
type StubFetcher struct {
	FS   *MockFilesystem
	Body []byte
	Err  error

	mu    sync.Mutex
	calls []string
}

// Fetch records the URL and writes Body to dst, or returns Err.
func (f *StubFetcher) Fetch(_ context.Context, rawURL, dst string) error {
	f.mu.Lock()
	f.calls = append(f.calls, rawURL)
	f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	if f.FS == nil {
		return fmt.Errorf("StubFetcher has no filesystem")
	}
	f.FS.AddFile(dst, f.Body)
	return nil
}

// Calls returns the URLs fetched so far.
func (f *StubFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
