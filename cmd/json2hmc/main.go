package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sphaleron/json2hmc/pkg/cards"
	"github.com/sphaleron/json2hmc/pkg/config"
	"github.com/sphaleron/json2hmc/pkg/convert"
	"github.com/sphaleron/json2hmc/pkg/hmc"
	"github.com/sphaleron/json2hmc/pkg/logger"
	"github.com/sphaleron/json2hmc/pkg/sheet"
	"github.com/spf13/cobra"
)

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "json2hmc",
		Short: "Hearthstone cards JSON to Excel conversion",
		Long: `Reads card data from HearthstoneJSON (cards.collectible.json) and writes it
in the layout of the Hearthstone Master Collection spreadsheet.`,
		Version:       hmc.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, configPath, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&flags.Input, "input", "i", flags.Input, "input file name (JSON)")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "output file name")
	f.StringVarP(&flags.Format, "format", "f", "", "output format: xlsx, csv or sqlite (default from output extension)")
	f.StringSliceVarP(&flags.Sets, "sets", "s", nil, "sets to include in output (HMC naming, default=all)")
	f.StringSliceVar(&flags.Standard, "standard", flags.Standard, "collections in the Standard format")
	f.BoolVar(&flags.Fetch, "fetch", false, "download the input file if it is missing")
	f.StringVar(&flags.SourceURL, "source-url", flags.SourceURL, "where --fetch downloads cards from")
	f.BoolVar(&flags.SkipInvalid, "skip-invalid", false, "skip cards that cannot be converted instead of failing")
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(newSetsCmd())
	return cmd
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command, path string, flags *config.Config) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Input = flags.Input
	}
	if f.Changed("output") {
		cfg.Output = flags.Output
	}
	if f.Changed("format") {
		cfg.Format = flags.Format
	}
	if f.Changed("sets") {
		cfg.Sets = flags.Sets
	}
	if f.Changed("standard") {
		cfg.Standard = flags.Standard
	}
	if f.Changed("fetch") {
		cfg.Fetch = flags.Fetch
	}
	if f.Changed("source-url") {
		cfg.SourceURL = flags.SourceURL
	}
	if f.Changed("skip-invalid") {
		cfg.SkipInvalid = flags.SkipInvalid
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(&logger.Config{Level: cfg.LogLevel, Output: os.Stderr})

	format, err := sheet.NormalizeFormat(cfg.Format, cfg.Output)
	if err != nil {
		return err
	}

	if cfg.Fetch {
		if err := cards.NewDownloader(log).EnsureCards(ctx, cfg.Input, cfg.SourceURL); err != nil {
			return err
		}
	}

	start := time.Now()
	records, err := cards.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}
	log.Info("Loaded cards", "path", cfg.Input, "count", len(records), "took", time.Since(start))

	normalizer, err := hmc.NewNormalizer(cfg.Standard)
	if err != nil {
		return err
	}
	conv := convert.NewConverter(normalizer)
	conv.Sets = cfg.Sets
	conv.SkipInvalid = cfg.SkipInvalid
	conv.Logger = log
	conv.OnProgress = func(current, total int) {
		log.Debug("Converting", "done", current, "total", total)
	}

	rows, stats, err := conv.Convert(ctx, records)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	log.Info("Converted cards",
		"rows", stats.Emitted, "no_cost", stats.NoCost,
		"filtered", stats.Filtered, "invalid", stats.Invalid)

	if err := sheet.Write(ctx, cfg.Output, format, rows); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("Processing complete", "output", cfg.Output, "format", string(format))
	return nil
}

func newSetsCmd() *cobra.Command {
	var standard []string
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the known sets and their HMC names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := hmc.NewNormalizer(standard)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SET\tCOLLECTION\t#COLLECTION\tFORMAT")
			for _, id := range hmc.SetIDs() {
				info, _ := hmc.LookupSet(id)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", id, info.Name, info.Order, n.Format(info.Name))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&standard, "standard", hmc.DefaultStandard, "collections in the Standard format")
	return cmd
}
