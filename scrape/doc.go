// Package scrape defines the marketplace scraper interface, shared browser
// setup and the field cleaners that turn raw page text into numbers.
//
// Concrete scrapers live in the sub-packages scrape/amazon and
// scrape/flipkart; both drive a headless Chrome via chromedp because the
// marketplaces render search results client-side.
package scrape
