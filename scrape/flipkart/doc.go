// Package flipkart scrapes product listings from Flipkart search result
// pages via headless Chrome.
package flipkart
