// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperboy/internal/acquire"
	"github.com/pdiddy/paperboy/internal/credential"
	"github.com/pdiddy/paperboy/internal/filter"
	"github.com/pdiddy/paperboy/internal/listing"
	"github.com/pdiddy/paperboy/pkg/types"
)

// runPapers resolves the cookie, fetches and parses the module's listing,
// filters it, and then prints or saves what remains.
func runPapers(cmd *cobra.Command, args []string) error {
	module, cookieArg := args[0], args[1]
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := listing.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cred, err := credential.Resolve(cookieArg)
	if err != nil {
		return err
	}

	httpCfg := httpConfig(cmd)
	listingCfg := types.ListingConfig{
		HTTPConfig: httpCfg,
		BaseURL:    viper.GetString("listing.base_url"),
		CodeParam:  viper.GetString("listing.code_param"),
	}
	client := &http.Client{Timeout: httpCfg.Timeout}

	body, err := listing.Fetch(cmd.Context(), client, module, cred, listingCfg)
	if err != nil {
		return err
	}

	parsed, err := listing.Parse(body)
	if err != nil {
		return fmt.Errorf("%w: %v", listing.ErrFetchFailed, err)
	}
	for _, m := range parsed.Skipped {
		fmt.Fprintf(stderr, "skipped: %s (%v)\n", m.Filename, m.Err)
	}

	papers := filter.Apply(parsed.Papers, filterConfig(cmd))

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return listing.Write(stdout, papers, format)
	}

	base, err := url.Parse(listing.URL(listingCfg, module))
	if err != nil {
		return fmt.Errorf("parsing listing URL: %w", err)
	}
	acqCfg := types.AcquisitionConfig{
		HTTPConfig: httpCfg,
		OutputDir:  outputDir(cmd),
	}
	result := acquire.SaveBatch(cmd.Context(), client, papers, base, cred, acqCfg, stdout)
	if result.Total() > 0 {
		fmt.Fprintf(stderr, "Batch summary: %d saved, %d failed (total: %d)\n",
			result.Saved, result.Failed, result.Total())
	}
	if result.HasFailures() {
		return fmt.Errorf("%d paper(s) failed to download", result.Failed)
	}
	return nil
}

func httpConfig(cmd *cobra.Command) types.HTTPConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("http.timeout")
	}
	return types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: viper.GetString("http.user_agent"),
	}
}

// filterConfig reads the year bounds only when the flags were given, so an
// explicit 0 is still a bound.
func filterConfig(cmd *cobra.Command) types.FilterConfig {
	var cfg types.FilterConfig
	if cmd.Flags().Changed("minyear") {
		v, _ := cmd.Flags().GetInt("minyear")
		cfg.MinYear = &v
	}
	if cmd.Flags().Changed("maxyear") {
		v, _ := cmd.Flags().GetInt("maxyear")
		cfg.MaxYear = &v
	}
	cfg.NoResits, _ = cmd.Flags().GetBool("noresits")
	return cfg
}

func outputDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir
	}
	return viper.GetString("output_dir")
}
