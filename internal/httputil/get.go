// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/paperboy/pkg/types"
)

// Result is the outcome of a single GET. Err is set when the request could
// not be sent or its body could not be read; Status is non-zero whenever a
// response arrived, even if reading its body then failed. Body is nil
// whenever Err is set.
type Result struct {
	URL    string
	Status int
	Body   []byte
	Err    error
}

// OK reports whether the request completed with a 2xx status.
func (r Result) OK() bool {
	return r.Err == nil && r.Status >= 200 && r.Status < 300
}

// Error returns nil for a successful result and a descriptive error otherwise.
func (r Result) Error() error {
	if r.Err != nil {
		return r.Err
	}
	if !r.OK() {
		return fmt.Errorf("HTTP %d from %s", r.Status, r.URL)
	}
	return nil
}

// Get issues one authenticated GET and reads the whole body. It never
// retries; a failed request is reported in the returned Result.
func Get(ctx context.Context, client *http.Client, url string, cred types.Credential, userAgent string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	cred.Apply(req)

	resp, err := client.Do(req)
	if err != nil {
		return Result{URL: url, Err: fmt.Errorf("HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	return Result{URL: url, Status: resp.StatusCode, Body: body}
}
