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

package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pricelens/pricelens/compare"
	"github.com/pricelens/pricelens/core"
)

const titleWidth = 60

// RenderComparison renders a full comparison as terminal text: the matched
// pair, its confidence tier, the recommendation, and any warnings or
// disambiguation candidates.
func RenderComparison(c *compare.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %s\n", c.Query)
	fmt.Fprintf(&b, "Match tier: %s (score %.1f, name similarity %.0f%%)\n\n",
		c.Match.Tier, c.Match.Score, c.Match.NameSimilarity)

	if c.Match.ListingA != nil && c.Match.ListingB != nil {
		b.WriteString(listingTable([]*core.ListingRecord{c.Match.ListingA, c.Match.ListingB}).Render())
		b.WriteString("\n")
	}

	for _, warning := range c.Match.Warnings {
		fmt.Fprintf(&b, "\nWarning: %s", warning)
	}
	if len(c.Match.Warnings) > 0 {
		b.WriteString("\n")
	}

	if c.Recommendation != nil {
		b.WriteString("\n")
		b.WriteString(renderRecommendation(c.Recommendation))
	}

	if c.Disambiguation != nil {
		b.WriteString("\n")
		b.WriteString(renderDisambiguation(c.Disambiguation))
	}

	return b.String()
}

// RenderListings renders stored or scraped listings as a terminal table.
func RenderListings(records []*core.ListingRecord) string {
	if len(records) == 0 {
		return "no listings\n"
	}
	return listingTable(records).Render() + "\n"
}

// RenderListingsCSV renders listings as CSV for spreadsheet import.
func RenderListingsCSV(records []*core.ListingRecord) string {
	return listingTable(records).RenderCSV() + "\n"
}

func renderRecommendation(rec *compare.Recommendation) string {
	var b strings.Builder

	if rec.Tied() {
		b.WriteString("Recommendation: both platforms (similar quality)\n")
	} else {
		fmt.Fprintf(&b, "Recommendation: buy on %s\n", rec.Winner)
	}
	for _, reason := range rec.Reasons {
		fmt.Fprintf(&b, "  - %s\n", reason)
	}
	return b.String()
}

func renderDisambiguation(d *compare.Disambiguation) string {
	var b strings.Builder

	b.WriteString("No confident match; top candidates per platform:\n")
	if len(d.TopA) > 0 {
		fmt.Fprintf(&b, "\n%s:\n%s\n", d.PlatformA, listingTable(d.TopA).Render())
	}
	if len(d.TopB) > 0 {
		fmt.Fprintf(&b, "\n%s:\n%s\n", d.PlatformB, listingTable(d.TopB).Render())
	}
	return b.String()
}

func listingTable(records []*core.ListingRecord) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Platform", "Title", "Price", "Rating", "Reviews", "Similarity"})

	for i, record := range records {
		tw.AppendRow(table.Row{
			i + 1,
			record.Platform,
			truncate(record.Title, titleWidth),
			formatPrice(record.Price),
			formatRating(record.Rating),
			formatCount(record.ReviewCount),
			formatSimilarity(record.Similarity),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw
}

// Zero means "not available" throughout the listing model; render it as a
// dash rather than a misleading number.

func formatPrice(price float64) string {
	if price == 0 {
		return "-"
	}
	return fmt.Sprintf("₹%.2f", price)
}

func formatRating(rating float64) string {
	if rating == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", rating)
}

func formatCount(count int) string {
	if count == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", count)
}

func formatSimilarity(similarity float64) string {
	if similarity == 0 {
		return "-"
	}
	return fmt.Sprintf("%.4f", similarity)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
