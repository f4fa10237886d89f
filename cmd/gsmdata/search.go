package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nao1215/gsmdata/internal/config"
	"github.com/nao1215/gsmdata/internal/extract"
	"github.com/nao1215/gsmdata/internal/log"
	"github.com/nao1215/gsmdata/internal/model"
	"github.com/nao1215/gsmdata/internal/report"
	"github.com/nao1215/gsmdata/internal/scraper"
	"github.com/nao1215/gsmdata/internal/search"
	"github.com/spf13/cobra"
)

// addSearchFlags registers the flags of the search run.
// Defaults shown here are those of the classic layout; the extended layout
// and the config file change them unless the flag is given.
func addSearchFlags(cmd *cobra.Command) {
	// Query flags
	cmd.Flags().IntP("battery", "b", model.LayoutClassic.DefaultMinBattery(),
		"Minimum battery capacity in mAh")
	cmd.Flags().IntP("year", "y", model.LayoutClassic.DefaultMinYear(),
		"Minimum release year")
	cmd.Flags().StringP("os_query", "o", "",
		"Only print devices whose OS contains this text (case-sensitive)")
	cmd.Flags().StringP("query", "q", "",
		"Search URL to use instead of the built-in query (absolute, or relative to the site root)")

	// Output flags
	cmd.Flags().BoolP("header", "h", false,
		"Print the header row and exit")
	cmd.Flags().StringP("layout", "l", string(config.DefaultLayout),
		"Column layout: "+model.LayoutNames())
	cmd.Flags().StringP("format", "f", string(config.FormatTSV),
		"Output format: tsv, json, markdown or table")

	// Fetch behavior flags
	cmd.Flags().String("on-page-error", string(config.PageErrorSkip),
		"What to do when a device page fails: skip or abort")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency,
		"Number of device pages fetched in parallel")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each request")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .gsmdata.yaml in current, XDG config or home directory)")
}

// runSearchCmd executes the search.
func runSearchCmd(cmd *cobra.Command, newFetcher fetcherFactory) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.HeaderOnly {
		return report.WriteHeader(out, cfg.Layout)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runSearch(ctx, cfg, newFetcher(cfg, logger), out, logger)
}

// runSearch scrapes the configured search and writes rows to out.
func runSearch(ctx context.Context, cfg *config.Config, fetcher scraper.Fetcher, out io.Writer, logger *slog.Logger) error {
	root, err := search.ParseRoot(cfg.SiteRoot)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	searchURL, err := search.URL(root, search.Params{MinYear: cfg.MinYear, MinBattery: cfg.MinBattery}, cfg.Query)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	extractor, err := extract.New(cfg.Selectors)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	results, err := extract.Compile(cfg.ResultsSelector)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	writer, err := report.NewWriter(cfg.Format, out, cfg.Layout)
	if err != nil {
		return err
	}

	detail := scraper.NewDetailScraper(fetcher, extractor, writer,
		scraper.WithFilter(scraper.Filter{OSQuery: cfg.OSQuery}),
		scraper.WithDetailLogger(logger),
	)
	s := scraper.NewSearchScraper(fetcher, detail, root,
		scraper.WithResultsSelector(results),
		scraper.WithPageErrorPolicy(cfg.OnPageError),
		scraper.WithConcurrency(cfg.Concurrency),
		scraper.WithSearchLogger(logger),
	)

	logger.Debug("starting search",
		"url", searchURL,
		"layout", cfg.Layout,
		"format", cfg.Format,
		"os_query", cfg.OSQuery,
		"concurrency", cfg.Concurrency,
		slog.Attr{Key: "headers", Value: headerAttrs(cfg.Headers)},
	)

	_, runErr := s.Run(ctx, searchURL)
	// Buffered formats still print what was collected before a failure.
	return errors.Join(runErr, writer.Flush())
}

func headerAttrs(headers map[string]string) slog.Value {
	attrs := make([]slog.Attr, 0, len(headers))
	for k, v := range headers {
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.GroupValue(attrs...)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the layout defaults, the config file and
// the command flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	if cfg.HeaderOnly, err = flags.GetBool("header"); err != nil {
		return nil, err
	}

	// An explicitly given config file must exist; a discovered one is optional.
	file, err := loadConfigFile(cfg.ConfigFilePath)
	if err != nil {
		return nil, err
	}
	// The header row depends on the layout only.
	if cfg.HeaderOnly && file != nil {
		file = &config.File{Layout: file.Layout}
	}
	if err := file.Apply(cfg); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	if flags.Changed("layout") {
		name, err := flags.GetString("layout")
		if err != nil {
			return nil, err
		}
		layout, err := model.ParseLayout(name)
		if err != nil {
			return nil, fmt.Errorf("configuration error: %w", config.ErrInvalidLayout)
		}
		cfg.Layout = layout
		if file == nil || file.MinYear == nil {
			cfg.MinYear = layout.DefaultMinYear()
		}
		if file == nil || file.MinBattery == nil {
			cfg.MinBattery = layout.DefaultMinBattery()
		}
	}

	if flags.Changed("year") {
		if cfg.MinYear, err = flags.GetInt("year"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("battery") {
		if cfg.MinBattery, err = flags.GetInt("battery"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		name, err := flags.GetString("format")
		if err != nil {
			return nil, err
		}
		if cfg.Format, err = config.ParseFormat(name); err != nil {
			return nil, fmt.Errorf("configuration error: %w", err)
		}
	}
	if flags.Changed("on-page-error") {
		name, err := flags.GetString("on-page-error")
		if err != nil {
			return nil, err
		}
		if cfg.OnPageError, err = config.ParsePageErrorPolicy(name); err != nil {
			return nil, fmt.Errorf("configuration error: %w", err)
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}

	if cfg.OSQuery, err = flags.GetString("os_query"); err != nil {
		return nil, err
	}
	if cfg.Query, err = flags.GetString("query"); err != nil {
		return nil, err
	}
	cfg.Query = strings.TrimSpace(cfg.Query)
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// loadConfigFile returns the parsed config file, or nil when none was given
// and none was found.
func loadConfigFile(path string) (*config.File, error) {
	explicit := path != ""
	found := config.FindConfigFile(path)
	if found == "" {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s: %w", path, config.ErrConfigNotFound)
		}
		return nil, nil
	}

	file, err := config.LoadConfigFile(found)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	return file, nil
}
