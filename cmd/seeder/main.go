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

// Seeder populates a database with sample listings from both marketplaces,
// so the matcher and reports can be exercised without a live scrape.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/pricelens/pricelens/core"
	"github.com/pricelens/pricelens/storage/badger"
)

var sampleListings = []*core.ListingRecord{
	{
		Platform:    core.PlatformAmazon,
		Title:       "Apple iPhone 17 Pro (256 GB) - Cosmic Orange",
		Price:       134900,
		Rating:      4.6,
		ReviewCount: 1250,
		URL:         "https://www.amazon.in/dp/B0SAMPLE01",
	},
	{
		Platform:    core.PlatformAmazon,
		Title:       "Apple iPhone 17 Pro (512 GB) - Deep Blue",
		Price:       154900,
		Rating:      4.7,
		ReviewCount: 890,
		URL:         "https://www.amazon.in/dp/B0SAMPLE02",
	},
	{
		Platform:    core.PlatformAmazon,
		Title:       "Samsung Galaxy S25 Ultra 5G (Titanium Black, 256 GB)",
		Price:       129999,
		Rating:      4.5,
		ReviewCount: 2310,
		URL:         "https://www.amazon.in/dp/B0SAMPLE03",
	},
	{
		Platform:    core.PlatformAmazon,
		Title:       "Sony WH-1000XM5 Wireless Noise Cancelling Headphones Black",
		Price:       26990,
		Rating:      4.4,
		ReviewCount: 5430,
		URL:         "https://www.amazon.in/dp/B0SAMPLE04",
	},
	{
		Platform:    core.PlatformAmazon,
		Title:       "Spigen Liquid Air Back Cover Case for iPhone 17 Pro (Matte Black)",
		Price:       1499,
		Rating:      4.3,
		ReviewCount: 12050,
		URL:         "https://www.amazon.in/dp/B0SAMPLE05",
	},
	{
		Platform:    core.PlatformFlipkart,
		Title:       "Apple iPhone 17 Pro 256 GB Cosmic Orange",
		Price:       129900,
		Rating:      4.5,
		ReviewCount: 2100,
		URL:         "https://www.flipkart.com/apple-iphone-17-pro/p/itmsample01",
	},
	{
		Platform:    core.PlatformFlipkart,
		Title:       "Apple iPhone 17 Pro 256 GB Deep Blue",
		Price:       131900,
		Rating:      4.6,
		ReviewCount: 1840,
		URL:         "https://www.flipkart.com/apple-iphone-17-pro/p/itmsample02",
	},
	{
		Platform:    core.PlatformFlipkart,
		Title:       "SAMSUNG Galaxy S25 Ultra (Titanium Black, 256 GB)",
		Price:       125999,
		Rating:      4.4,
		ReviewCount: 3125,
		URL:         "https://www.flipkart.com/samsung-galaxy-s25-ultra/p/itmsample03",
	},
	{
		Platform:    core.PlatformFlipkart,
		Title:       "Sony WH-1000XM5 Bluetooth Headset (Black)",
		Price:       24990,
		Rating:      4.3,
		ReviewCount: 8740,
		URL:         "https://www.flipkart.com/sony-wh-1000xm5/p/itmsample04",
	},
	{
		Platform:    core.PlatformFlipkart,
		Title:       "Minimalist 2% Salicylic Acid Face Serum 30 ml",
		Price:       549,
		Rating:      4.2,
		ReviewCount: 15600,
		URL:         "https://www.flipkart.com/minimalist-salicylic-serum/p/itmsample05",
	},
}

func main() {
	dbPath := flag.String("db", "pricelens.db", "Path to BadgerDB database directory")
	clear := flag.Bool("clear", false, "Clear existing listings before seeding")
	flag.Parse()

	logger := slog.Default().With("component", "seeder")
	ctx := context.Background()

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		logger.Error("failed to open database", "path", *dbPath, "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	repo, err := badger.NewListingRepository(backend)
	if err != nil {
		logger.Error("failed to create repository", "err", err)
		os.Exit(1)
	}
	defer repo.Close()

	if *clear {
		for _, platform := range []core.Platform{core.PlatformAmazon, core.PlatformFlipkart} {
			removed, err := repo.ClearPlatform(ctx, platform)
			if err != nil {
				logger.Error("failed to clear listings", "platform", platform, "err", err)
				os.Exit(1)
			}
			logger.Info("cleared listings", "platform", platform, "removed", removed)
		}
	}

	if _, err := repo.UpsertListings(ctx, sampleListings...); err != nil {
		logger.Error("failed to seed listings", "err", err)
		os.Exit(1)
	}

	logger.Info("seeded sample listings", "count", len(sampleListings), "db", *dbPath)
}
