// Package report renders comparisons and listings for the terminal and for
// CSV export.
package report
