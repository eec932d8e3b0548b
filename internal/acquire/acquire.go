// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acquire prints or downloads the exam papers that survive filtering.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pdiddy/paperboy/internal/httputil"
	"github.com/pdiddy/paperboy/pkg/types"
)

// ErrDownloadFailed is wrapped by every per-paper download failure.
var ErrDownloadFailed = errors.New("download failed")

// BatchResult holds the outcome of a save run.
type BatchResult struct {
	Saved  int
	Failed int
}

// Total returns the number of papers processed.
func (r BatchResult) Total() int {
	return r.Saved + r.Failed
}

// HasFailures reports whether any paper failed to download.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// SavePaper downloads one paper and writes it to cfg.OutputDir under its
// SavedName, replacing any existing file. Relative links are resolved
// against base, the listing page address. It returns the written path.
func SavePaper(ctx context.Context, client *http.Client, paper types.ExamPaper, base *url.URL, cred types.Credential, cfg types.AcquisitionConfig) (string, error) {
	if name := paper.SavedName(); !filepath.IsLocal(name) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q is not a plain filename", ErrDownloadFailed, name)
	}

	target, err := resolve(base, paper.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	res := httputil.Get(ctx, client, target, cred, cfg.UserAgent)
	if err := res.Error(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating directory %s: %v", ErrDownloadFailed, dir, err)
	}

	path := filepath.Join(dir, paper.SavedName())
	if err := writeFile(path, res.Body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	return path, nil
}

// SaveBatch downloads papers one at a time, printing one line per paper to w.
// A failed download is reported and counted; it does not stop the batch.
func SaveBatch(ctx context.Context, client *http.Client, papers []types.ExamPaper, base *url.URL, cred types.Credential, cfg types.AcquisitionConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range papers {
		_, err := SavePaper(ctx, client, p, base, cred, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", p.SavedName(), err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "saved %s\n", p.SavedName())
		result.Saved++
	}
	return result
}

func resolve(base *url.URL, ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parsing link %q: %w", ref, err)
	}
	if base == nil || u.IsAbs() {
		return u.String(), nil
	}
	return base.ResolveReference(u).String(), nil
}

// writeFile writes data to a temporary file beside path and renames it
// into place so a failed write never leaves a truncated paper behind.
func writeFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".paperboy-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	if writeErr == nil {
		writeErr = tmpFile.Chmod(0o644)
	}
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
