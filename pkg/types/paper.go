// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for paperboy: the exam paper
// record, the exam period enumeration, the session credential, and stage
// configuration.
package types

import (
	"fmt"
	"strings"
)

// Period identifies the exam sitting a paper belongs to. The zero value is
// PeriodUnknown so an unparsed label can never pass as a real sitting.
type Period int

const (
	PeriodUnknown Period = iota
	PeriodJanuary
	PeriodSummer
	PeriodAutumn
)

func (p Period) String() string {
	switch p {
	case PeriodJanuary:
		return "January"
	case PeriodSummer:
		return "Summer"
	case PeriodAutumn:
		return "Autumn"
	default:
		return "unknown"
	}
}

// MarshalText encodes the period by name for JSON and YAML output.
func (p Period) MarshalText() ([]byte, error) {
	if p == PeriodUnknown {
		return nil, fmt.Errorf("cannot encode unknown exam period")
	}
	return []byte(p.String()), nil
}

// UnmarshalText accepts any label ParsePeriod accepts.
func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePeriod maps a listing label to a Period, ignoring case. "Repeat" is
// the library's name for the Autumn resit sitting.
func ParsePeriod(label string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "january":
		return PeriodJanuary, nil
	case "summer":
		return PeriodSummer, nil
	case "autumn", "repeat":
		return PeriodAutumn, nil
	default:
		return PeriodUnknown, fmt.Errorf("unrecognized exam period %q", label)
	}
}

// ExamPaper is one downloadable paper parsed from a listing page.
type ExamPaper struct {
	// Course is the module code, e.g. "CS211".
	Course string `json:"course" yaml:"course"`

	// Year is the four-digit academic year of the sitting.
	Year int `json:"year" yaml:"year"`

	// Period is the exam sitting.
	Period Period `json:"period" yaml:"period"`

	// URL is the link target as it appears in the listing; it may be relative.
	URL string `json:"url" yaml:"url"`

	// Filename is the display name shown in the listing.
	Filename string `json:"filename" yaml:"filename"`
}

// SavedName returns the local filename a downloaded paper is written to.
func (p ExamPaper) SavedName() string {
	return fmt.Sprintf("%s-%d-%s.pdf", p.Course, p.Year, p.Period)
}
