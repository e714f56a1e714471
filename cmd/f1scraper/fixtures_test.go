package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	raceSummary1950 = `<html><body><div class="resultsarchive-wrapper"><div class="resultsarchive-content">
<div class="table-wrap"><table class="resultsarchive-table">
<thead><tr><th class="limiter"></th><th>Grand Prix</th><th>Date</th><th>Winner</th><th>Car</th><th>Laps</th><th>Time</th><th class="limiter"></th></tr></thead>
<tbody>
<tr><td class="limiter"></td>
<td><a href="/en/results.html/1950/races/94/great-britain/race-result.html">Great Britain</a></td>
<td>13 May 1950</td>
<td><span class="hide-for-tablet">Nino</span> <span class="hide-for-mobile">Farina</span> <span class="uppercase hide-for-desktop">FAR</span></td>
<td>Alfa Romeo</td><td>70</td><td>2:13:23.600</td>
<td class="limiter"></td></tr>
<tr><td class="limiter"></td>
<td><a href="/en/results.html/1950/races/100/italy/race-result.html">Italy</a></td>
<td>03 Sep 1950</td>
<td><span class="hide-for-tablet">Nino</span> <span class="hide-for-mobile">Farina</span> <span class="uppercase hide-for-desktop">FAR</span></td>
<td>Alfa Romeo</td><td>80</td><td>2:51:17.400</td>
<td class="limiter"></td></tr>
</tbody></table></div></div></div></body></html>`

	raceResultItaly1950 = `<html><body><div class="resultsarchive-wrapper"><div class="resultsarchive-content">
<div class="resultsarchive-col-right"><table class="resultsarchive-table">
<thead><tr><th class="limiter"></th><th>Pos</th><th>No</th><th>Driver</th><th>Car</th><th>Laps</th><th>Time/Retired</th><th>PTS</th><th class="limiter"></th></tr></thead>
<tbody>
<tr><td class="limiter"></td><td>1</td><td>10</td>
<td><span class="hide-for-tablet">Nino</span> <span class="hide-for-mobile">Farina</span> <span class="uppercase hide-for-desktop">FAR</span></td>
<td>Alfa Romeo</td><td>80</td><td>2:51:17.400</td><td>8</td><td class="limiter"></td></tr>
</tbody></table></div></div></div></body></html>`
)

// newArchiveServer serves the 1950 race pages. Every other path is a 404.
func newArchiveServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/en/results.html/1950/races.html", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(raceSummary1950))
	})
	mux.HandleFunc("/en/results.html/1950/races/100/italy/race-result.html", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(raceResultItaly1950))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// writeTestConfig writes an empty configuration file so that no file from
// the home directory leaks into a test.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// runCLI runs the root command with args and returns the exit code and the
// captured stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	code := execute(context.Background(), root, args)
	return code, stdout.String(), stderr.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
