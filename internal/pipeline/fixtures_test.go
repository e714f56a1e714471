package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/nao1215/f1scraper/internal/fetch"
	"github.com/nao1215/f1scraper/internal/target"
)

const testBase = "https://archive.test"

// mockFetcher serves canned pages by URL and records every request.
type mockFetcher struct {
	pages    map[string]string
	requests []string
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{pages: make(map[string]string)}
}

// Fetch implements fetch.Fetcher.
func (m *mockFetcher) Fetch(_ context.Context, t target.PageTarget) (string, error) {
	m.requests = append(m.requests, t.URL())
	body, ok := m.pages[t.URL()]
	if !ok {
		return "", &fetch.StatusError{URL: t.URL(), StatusCode: 404}
	}
	return body, nil
}

func (m *mockFetcher) serve(path, body string) {
	m.pages[testBase+path] = body
}

func summaryLayout(rows string) string {
	return `<html><body><div class="resultsarchive-wrapper"><div class="resultsarchive-content">
<div class="table-wrap"><table class="resultsarchive-table">` + rows + `</table></div></div></div></body></html>`
}

func raceResultLayout(rows string) string {
	return `<html><body><div class="resultsarchive-wrapper"><div class="resultsarchive-content">
<div class="resultsarchive-col-right"><table class="resultsarchive-table">` + rows + `</table></div></div></div></body></html>`
}

func td(cells ...string) string {
	var b strings.Builder
	b.WriteString(`<tr><td class="limiter"></td>`)
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString(`<td class="limiter"></td></tr>`)
	return b.String()
}

func th(cells ...string) string {
	var b strings.Builder
	b.WriteString(`<thead><tr><th class="limiter"></th>`)
	for _, c := range cells {
		b.WriteString("<th>" + c + "</th>")
	}
	b.WriteString(`<th class="limiter"></th></tr></thead>`)
	return b.String()
}

func anchor(href, text string) string {
	return fmt.Sprintf(`<a href="%s" class="dark bold ArchiveLink">%s</a>`, href, text)
}

func driverSpans(first, last, code string) string {
	return `<span class="hide-for-tablet">` + first + `</span> <span class="hide-for-mobile">` + last +
		`</span> <span class="uppercase hide-for-desktop">` + code + `</span>`
}

func raceSummary1950() string {
	return summaryLayout(th("Grand Prix", "Date", "Winner", "Car", "Laps", "Time") + "<tbody>" +
		td(anchor("/en/results.html/1950/races/100/italy/race-result.html", "Italy"),
			"03 Sep 1950", driverSpans("Nino", "Farina", "FAR"), "Alfa Romeo", "80", "2:51:17.400") +
		"</tbody>")
}

func raceResultItaly1950() string {
	return raceResultLayout(th("Pos", "No", "Driver", "Car", "Laps", "Time/Retired", "PTS") + "<tbody>" +
		td("1", "10", driverSpans("Nino", "Farina", "FAR"), "Alfa Romeo", "80", "2:51:17.400", "8") +
		td("2", "48", driverSpans("Dorino", "Serafini", "SER"), "Ferrari", "80", "+78.300s", "3") +
		"</tbody>")
}

func teamSummary(year int, teams ...[2]string) string {
	var rows strings.Builder
	for i, tm := range teams {
		href := fmt.Sprintf("/en/results.html/%d/team/%s.html", year, tm[0])
		rows.WriteString(td(fmt.Sprint(i+1), anchor(href, tm[1]), "0"))
	}
	return summaryLayout("<tbody>" + rows.String() + "</tbody>")
}

func teamResult(year int) string {
	return `<div class="resultsarchive-wrapper"><div class="resultsarchive-content"><div class="table-wrap">
<table class="resultsarchive-table"><tbody>` +
		td(anchor(fmt.Sprintf("/en/results.html/%d/races/94/great-britain/race-result.html", year), "Great Britain"), "13 May "+fmt.Sprint(year), "9") +
		`</tbody></table></div></div></div>`
}

// raceSummary2020 lists two races run at the same circuit, which share a slug.
func raceSummary2020() string {
	return summaryLayout(th("Grand Prix", "Date", "Winner", "Car", "Laps", "Time") + "<tbody>" +
		td(anchor("/en/results.html/2020/races/1045/austria/race-result.html", "Austria"),
			"05 Jul 2020", driverSpans("Valtteri", "Bottas", "BOT"), "Mercedes", "71", "1:30:55.739") +
		td(anchor("/en/results.html/2020/races/1046/austria/race-result.html", "Styria"),
			"12 Jul 2020", driverSpans("Lewis", "Hamilton", "HAM"), "Mercedes", "71", "1:22:50.683") +
		"</tbody>")
}
