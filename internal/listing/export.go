// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperboy/internal/filter"
	"github.com/pdiddy/paperboy/pkg/types"
)

// Format selects how a listing is written to the terminal.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	// FormatGrouped lists papers under a heading per year, oldest first.
	FormatGrouped Format = "grouped"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatGrouped:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml, or grouped)", s)
	}
}

// Write renders papers to w. Text output is one URL per line; JSON and
// YAML output carry the full records; grouped output nests each period's
// URL under its year.
func Write(w io.Writer, papers []types.ExamPaper, format Format) error {
	if papers == nil {
		papers = []types.ExamPaper{}
	}

	switch format {
	case FormatText, "":
		for _, p := range papers {
			if _, err := fmt.Fprintln(w, p.URL); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(papers, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(papers)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatGrouped:
		return writeGrouped(w, papers)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeGrouped(w io.Writer, papers []types.ExamPaper) error {
	groups := filter.ByYear(papers)
	for _, year := range filter.Years(papers) {
		if _, err := fmt.Fprintf(w, "%d\n", year); err != nil {
			return err
		}
		for _, p := range groups[year] {
			if _, err := fmt.Fprintf(w, "  %-8s %s\n", p.Period, p.URL); err != nil {
				return err
			}
		}
	}
	return nil
}
