package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperboy/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ListingConfig holds settings for fetching the exam-paper listing page.
type ListingConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the listing page without a query string.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// CodeParam is the query parameter that carries the course code.
	CodeParam string `json:"code_param" yaml:"code_param"`
}

// FilterConfig narrows a parsed listing. Nil bounds are unset.
type FilterConfig struct {
	// MinYear is the inclusive lower bound on the paper year.
	MinYear *int `json:"min_year,omitempty" yaml:"min_year,omitempty"`

	// MaxYear is the exclusive upper bound on the paper year.
	MaxYear *int `json:"max_year,omitempty" yaml:"max_year,omitempty"`

	// NoResits drops papers from the Autumn sitting.
	NoResits bool `json:"no_resits" yaml:"no_resits"`
}

// AcquisitionConfig holds settings for downloading papers.
type AcquisitionConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the directory saved papers are written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
