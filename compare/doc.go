// Package compare orchestrates the end-to-end comparison flow: concurrent
// marketplace scrapes, semantic narrowing, pair resolution and the final
// buy recommendation, with low-confidence outcomes surfaced as
// disambiguation candidates instead of a forced verdict.
package compare
