// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing fetches a course's exam-paper listing page from the
// library site and parses it into ExamPaper records.
package listing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/text/encoding/charmap"

	"github.com/pdiddy/paperboy/internal/httputil"
	"github.com/pdiddy/paperboy/pkg/types"
)

// Defaults for the Maynooth University exam-papers page.
const (
	DefaultBaseURL   = "https://www.maynoothuniversity.ie/library/exam-papers"
	DefaultCodeParam = "code_value_1"
)

// ErrFetchFailed is wrapped by every listing fetch failure.
var ErrFetchFailed = errors.New("failed to fetch listing page")

// URL returns the listing page address for course.
func URL(cfg types.ListingConfig, course string) string {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	param := cfg.CodeParam
	if param == "" {
		param = DefaultCodeParam
	}
	return base + "?" + url.Values{param: {course}}.Encode()
}

// Fetch downloads the listing page for course and returns its decoded text.
// The site serves Windows-1252, so the body is decoded from that rather
// than treated as UTF-8.
func Fetch(ctx context.Context, client *http.Client, course string, cred types.Credential, cfg types.ListingConfig) (string, error) {
	res := httputil.Get(ctx, client, URL(cfg, course), cred, cfg.UserAgent)
	if err := res.Error(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	text, err := charmap.Windows1252.NewDecoder().Bytes(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: decoding body: %v", ErrFetchFailed, err)
	}
	return string(text), nil
}
