// Package pipeline orchestrates scraping runs over a range of seasons.
//
// A summary run fetches one summary page per season. A result run goes
// through these states for every season:
//
//	resolving-summary -> indexing-entities -> filtering-by-name | all-entities -> fetching-detail
//
// and finally done. The summary page is fetched and decoded, every row's
// entity link is resolved into a fragment and indexed by name, and the
// detail page of each selected entity is fetched and decoded. Pages are
// handed to the caller's EmitFunc as soon as they are decoded.
//
// Runs are strictly sequential and stop at the first error. The name index
// is rebuilt for every season.
package pipeline
