// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/paperboy/pkg/types"
)

// fileSelector matches the anchor of every downloadable file entry.
const fileSelector = ".file a"

// coursePattern matches a plain module code such as "CS211".
var coursePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ErrMalformedRecord is wrapped by every per-entry parse failure.
var ErrMalformedRecord = errors.New("malformed listing entry")

// MalformedEntry is a listing entry that could not be turned into a record.
type MalformedEntry struct {
	Filename string
	URL      string
	Err      error
}

// ParseResult holds the records parsed from a page and the entries that
// were skipped.
type ParseResult struct {
	Papers  []types.ExamPaper
	Skipped []MalformedEntry
}

// Parse extracts every file entry from a listing page in document order.
// Entries whose filename does not follow {year}-{course}-{period}.pdf are
// reported in Skipped; they never appear in Papers.
func Parse(body string) (ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ParseResult{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var result ParseResult
	doc.Find(fileSelector).Each(func(i int, s *goquery.Selection) {
		filename := strings.TrimSpace(s.Text())
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)

		paper, err := ParseFilename(filename)
		if err == nil && href == "" {
			err = fmt.Errorf("%w: %s has no link target", ErrMalformedRecord, filename)
		}
		if err != nil {
			result.Skipped = append(result.Skipped, MalformedEntry{Filename: filename, URL: href, Err: err})
			return
		}
		paper.URL = href
		result.Papers = append(result.Papers, paper)
	})
	return result, nil
}

// ParseFilename splits a listing filename such as "2019-CS211-Summer.pdf"
// into its year, course and period. The returned paper has no URL.
func ParseFilename(filename string) (types.ExamPaper, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return types.ExamPaper{}, fmt.Errorf("%w: %q is not a .pdf file", ErrMalformedRecord, filename)
	}
	stem := filename[:len(filename)-len(".pdf")]

	parts := strings.Split(stem, "-")
	if len(parts) != 3 {
		return types.ExamPaper{}, fmt.Errorf("%w: %q has %d parts, want year-course-period", ErrMalformedRecord, filename, len(parts))
	}

	year, err := parseYear(parts[0])
	if err != nil {
		return types.ExamPaper{}, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, filename, err)
	}

	course := strings.TrimSpace(parts[1])
	if course == "" {
		return types.ExamPaper{}, fmt.Errorf("%w: %q has an empty course code", ErrMalformedRecord, filename)
	}
	if !coursePattern.MatchString(course) {
		return types.ExamPaper{}, fmt.Errorf("%w: %q has invalid course code %q", ErrMalformedRecord, filename, course)
	}

	period, err := types.ParsePeriod(parts[2])
	if err != nil {
		return types.ExamPaper{}, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, filename, err)
	}

	return types.ExamPaper{
		Course:   course,
		Year:     year,
		Period:   period,
		Filename: filename,
	}, nil
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("year %q is not four digits", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("year %q is not numeric", s)
		}
	}
	year, _ := strconv.Atoi(s)
	if year < 1000 {
		return 0, fmt.Errorf("year %q is out of range", s)
	}
	return year, nil
}
