package parser

// Structural selectors of the results tables. The archive uses three page
// layouts; the selectors differ in how deep the table is nested.
const (
	// SelectorSummary matches the race, team and fastest-lap summary tables.
	SelectorSummary = "div.resultsarchive-content>div.table-wrap>table.resultsarchive-table"

	// SelectorRaceResult matches the classification table of a single race.
	SelectorRaceResult = "div.resultsarchive-wrapper>div.resultsarchive-content>div.resultsarchive-col-right>table.resultsarchive-table"

	// SelectorWrapped matches the driver summary, driver result and team
	// result tables.
	SelectorWrapped = "div.resultsarchive-wrapper>div.resultsarchive-content>div.table-wrap>table.resultsarchive-table"
)

const (
	headerCellSelector = "thead>tr>th"
	bodyRowSelector    = "tbody>tr"
	cellSelector       = "td"
	anchorSelector     = "a"
	spanSelector       = "span"

	// limiterClass marks the empty spacer columns at both table edges.
	limiterClass = "limiter"
)
