// Copyright 2026 Pricelens Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pricelens/pricelens"
	"github.com/pricelens/pricelens/config"
	"github.com/pricelens/pricelens/core"
	"github.com/pricelens/pricelens/report"
)

func main() {
	app := &cli.App{
		Name:  "pricelens",
		Usage: "Cross-marketplace product search and price comparison",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "compare",
				Usage:     "Search both marketplaces and compare the best match",
				ArgsUsage: "<query>",
				Action:    compareCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Listings to request per marketplace",
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Semantic similarity threshold (0-1)",
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Write the filtered listings to a CSV file",
					},
				},
			},
			{
				Name:   "listings",
				Usage:  "Show stored listings for a marketplace",
				Action: listingsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "platform",
						Aliases:  []string{"p"},
						Usage:    "Marketplace (amazon or flipkart)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Write the listings to a CSV file",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Export all stored listings as CSV",
				Action: reportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output CSV path (defaults to the configured csv_path)",
					},
				},
			},
			{
				Name:   "clear",
				Usage:  "Delete stored listings for a marketplace",
				Action: clearCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "platform",
						Aliases:  []string{"p"},
						Usage:    "Marketplace (amazon or flipkart)",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func compareCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("limit") {
		cfg.Scraper.SearchLimit = c.Int("limit")
	}
	if c.IsSet("threshold") {
		cfg.Filter.Threshold = c.Float64("threshold")
	}

	app, err := pricelens.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to open application: %w", err)
	}
	defer app.Close()

	pipeline, err := app.NewComparePipeline()
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer pipeline.Close()

	comparison, err := pipeline.Compare(context.Background(), query)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	fmt.Print(report.RenderComparison(comparison))

	csvPath := c.String("csv")
	if csvPath == "" {
		csvPath = cfg.Report.CSVPath
	}
	if csvPath != "" {
		records := append(comparison.FilteredA, comparison.FilteredB...)
		if err := os.WriteFile(csvPath, []byte(report.RenderListingsCSV(records)), 0o644); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d listings to %s\n", len(records), csvPath)
	}
	return nil
}

func listingsCommand(c *cli.Context) error {
	platform, err := parsePlatform(c.String("platform"))
	if err != nil {
		return err
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	records, err := app.ListingRepository().GetListingsByPlatform(context.Background(), platform)
	if err != nil {
		return fmt.Errorf("failed to read listings: %w", err)
	}

	if csvPath := c.String("csv"); csvPath != "" {
		if err := os.WriteFile(csvPath, []byte(report.RenderListingsCSV(records)), 0o644); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d listings to %s\n", len(records), csvPath)
		return nil
	}

	fmt.Print(report.RenderListings(records))
	return nil
}

func reportCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	var records []*core.ListingRecord
	for _, platform := range []core.Platform{core.PlatformAmazon, core.PlatformFlipkart} {
		batch, err := app.ListingRepository().GetListingsByPlatform(context.Background(), platform)
		if err != nil {
			return fmt.Errorf("failed to read %s listings: %w", platform, err)
		}
		records = append(records, batch...)
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = app.Config().Report.CSVPath
	}
	if outPath == "" {
		fmt.Print(report.RenderListings(records))
		return nil
	}

	if err := os.WriteFile(outPath, []byte(report.RenderListingsCSV(records)), 0o644); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d listings to %s\n", len(records), outPath)
	return nil
}

func clearCommand(c *cli.Context) error {
	platform, err := parsePlatform(c.String("platform"))
	if err != nil {
		return err
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	removed, err := app.ListingRepository().ClearPlatform(context.Background(), platform)
	if err != nil {
		return fmt.Errorf("failed to clear listings: %w", err)
	}

	fmt.Printf("Removed %d %s listings\n", removed, platform)
	return nil
}

func openApp(c *cli.Context) (*pricelens.App, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	app, err := pricelens.NewApp(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open application: %w", err)
	}
	return app, nil
}

func parsePlatform(s string) (core.Platform, error) {
	platform := core.Platform(strings.ToLower(strings.TrimSpace(s)))
	if err := core.ValidatePlatform(platform); err != nil {
		return "", err
	}
	return platform, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
