// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperboy CLI, which lists and
// downloads Maynooth University exam papers for a course.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperboy/internal/listing"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = "60s"
	defaultUserAgent = "paperboy/0.1"
)

// rootCmd is the base command for the paperboy CLI.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paperboy <module> <cookie>",
		Short: "Get Maynooth University exam papers",
		Long: `paperboy fetches the library's exam-paper listing for a module code,
filters the papers by year and exam period, and either prints their links or
saves them to the output directory.

The cookie argument is either a JSON file holding your session cookie names
and values, or a single cookie given inline as NAME=VALUE.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPapers,
	}

	cmd.PersistentFlags().String("config", "", "config file (default: ./paperboy.yaml or ~/.config/paperboy/paperboy.yaml)")

	cmd.Flags().IntP("minyear", "l", 0, "the inclusive lower bound of the range of years you want papers for")
	cmd.Flags().IntP("maxyear", "u", 0, "the non-inclusive upper bound of the range of years you want papers for")
	cmd.Flags().BoolP("noresits", "r", false, "exclude papers from Autumn exam periods")
	cmd.Flags().BoolP("save", "s", false, "save the exam papers instead of printing links to stdout")
	cmd.Flags().String("format", "text", "listing output format when not saving: text, json, yaml, or grouped")
	cmd.Flags().String("dir", "", "directory saved papers are written to (default \".\")")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetDefault("listing.base_url", listing.DefaultBaseURL)
	viper.SetDefault("listing.code_param", listing.DefaultCodeParam)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("output_dir", ".")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperboy")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperboy"))
		}
	}

	viper.SetEnvPrefix("PAPERBOY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
