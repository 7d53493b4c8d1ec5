// Package cli implements the furnilytics command-line interface.
package cli

import (
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	furnilytics "github.com/furnilytics/furnilytics-go"
	"github.com/furnilytics/furnilytics-go/config"
	"github.com/furnilytics/furnilytics-go/internal/version"
)

// rootFlags holds the persistent flag values shared by every subcommand.
type rootFlags struct {
	apiKey  string
	baseURL string
	timeout int
	verbose bool
}

// NewRootCommand builds the furnilytics root command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "furnilytics",
		Short: "CLI for the Furnilytics dataset catalog API",
		Long: `furnilytics queries the Furnilytics dataset catalog: health checks,
catalog and metadata listings, and dataset rows with optional date-range
and row-limit filters. An API key is only needed for pro datasets.`,
		SilenceUsage: true,
		Version:      version.Version(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().StringVar(&flags.apiKey, "api-key", "",
		"API key (optional, only needed for pro datasets; falls back to FURNILYTICS_API_KEY)")
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "",
		"API base URL (falls back to FURNILYTICS_BASE_URL)")
	root.PersistentFlags().IntVar(&flags.timeout, "timeout", 0,
		"per-request timeout in seconds")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false,
		"log requests and responses to stderr")

	root.AddCommand(
		newHealthCommand(flags),
		newDatasetsCommand(flags),
		newMetadataCommand(flags),
		newMetaCommand(flags),
		newDataCommand(flags),
	)

	return root
}

// newClient resolves configuration (flags over environment over defaults)
// and builds the API client.
func (f *rootFlags) newClient() *furnilytics.Client {
	cfg := config.Load()

	if f.apiKey != "" {
		cfg.APIKey = f.apiKey
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.timeout > 0 {
		cfg.Timeout = time.Duration(f.timeout) * time.Second
	}

	opts := []furnilytics.Option{
		furnilytics.WithAPIKey(cfg.APIKey),
		furnilytics.WithBaseURL(cfg.BaseURL),
		furnilytics.WithTimeout(cfg.Timeout),
	}
	if f.verbose {
		opts = append(opts, furnilytics.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}

	return furnilytics.New(opts...)
}
