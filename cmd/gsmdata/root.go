package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/gsmdata/internal/config"
	"github.com/nao1215/gsmdata/internal/fetch"
	"github.com/nao1215/gsmdata/internal/scraper"
	"github.com/spf13/cobra"
)

// fetcherFactory builds the page fetcher for a run. It is only called once
// the run actually needs the network.
type fetcherFactory func(cfg *config.Config, logger *slog.Logger) scraper.Fetcher

// newHTTPFetcher is the production fetcherFactory.
func newHTTPFetcher(cfg *config.Config, logger *slog.Logger) scraper.Fetcher {
	return fetch.NewClient(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithHeaders(cfg.Headers),
		fetch.WithLogger(logger),
	)
}

// NewRootCmd creates the root command for gsmdata.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newHTTPFetcher)
}

func newRootCmd(newFetcher fetcherFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gsmdata",
		Short: "Print phone specifications from GSMArena as TSV",
		Long: `gsmdata runs a filtered device search on GSMArena, visits every device
on the first results page and prints one row of specifications per device.

Rows are tab-separated by default. Fields missing from a device page are
printed as (Unknown). Logs go to stderr, so stdout can be piped directly.

Examples:
  # Devices released in 2022 or later with at least 4500 mAh
  gsmdata -y 2022 -b 4500

  # Only Android devices, extended column layout
  gsmdata -o Android -l extended

  # Use a search URL copied from the browser
  gsmdata -q 'https://www.gsmarena.com/results.php3?nYearMin=2021&sOSes=2'

  # Print the header row, then the data
  gsmdata -h; gsmdata

Note: -h prints the header row. Use --help for this message.`,
		Args:          cobra.NoArgs,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearchCmd(cmd, newFetcher)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	// -h belongs to --header. Registering help first stops cobra from
	// claiming the shorthand for it.
	cmd.Flags().Bool("help", false, "help for gsmdata")
	addSearchFlags(cmd)

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
