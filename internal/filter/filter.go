// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter narrows a parsed listing by year range and exam period.
package filter

import (
	"sort"

	"github.com/pdiddy/paperboy/pkg/types"
)

// Apply returns the papers that satisfy cfg, in their original order.
// MinYear is inclusive and MaxYear exclusive, so a range with
// MaxYear <= MinYear yields an empty result rather than an error.
func Apply(papers []types.ExamPaper, cfg types.FilterConfig) []types.ExamPaper {
	out := make([]types.ExamPaper, 0, len(papers))
	for _, p := range papers {
		if Match(p, cfg) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single paper satisfies cfg.
func Match(p types.ExamPaper, cfg types.FilterConfig) bool {
	if cfg.MinYear != nil && p.Year < *cfg.MinYear {
		return false
	}
	if cfg.MaxYear != nil && p.Year >= *cfg.MaxYear {
		return false
	}
	if cfg.NoResits && p.Period == types.PeriodAutumn {
		return false
	}
	return true
}

// Years returns the distinct years present in papers, ascending.
func Years(papers []types.ExamPaper) []int {
	seen := make(map[int]bool)
	var years []int
	for _, p := range papers {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Ints(years)
	return years
}

// ByYear groups papers by year. Each group keeps the input order.
func ByYear(papers []types.ExamPaper) map[int][]types.ExamPaper {
	groups := make(map[int][]types.ExamPaper)
	for _, p := range papers {
		groups[p.Year] = append(groups[p.Year], p)
	}
	return groups
}
