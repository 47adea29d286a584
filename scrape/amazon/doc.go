// Package amazon scrapes product listings from Amazon search result pages
// via headless Chrome.
package amazon
