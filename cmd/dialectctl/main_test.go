package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dialectmap/okresy/auth"
	"github.com/dialectmap/okresy/models"
	"github.com/dialectmap/okresy/testutil"
)

// run executes dialectctl with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"dialectctl"}, args...))
	return out.String(), err
}

func TestAggregateCommand(t *testing.T) {
	records := testutil.WriteFile(t, "answers.csv", testutil.SampleCSV)
	out := filepath.Join(t.TempDir(), "votes.json")

	printed, err := run(t, "", "aggregate", "--records", records, "--out", out)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if !strings.Contains(printed, "6 answers in 3 districts") {
		t.Errorf("Expected answer and district counts, got %q", printed)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var votes map[string]models.PrecomputedStats
	if err := json.Unmarshal(data, &votes); err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if len(votes) != 3 {
		t.Fatalf("Expected 3 districts, got %d", len(votes))
	}
	praha, ok := votes["Praha"]
	if !ok {
		t.Fatalf("Expected Praha in output, got %v", votes)
	}
	if praha.Total != 3 || praha.Dominant != "dýl" || praha.DominantShare != 66.67 {
		t.Errorf("Unexpected Praha stats: %+v", praha)
	}
	if brno := votes["Brno-město"]; brno.Counts["později"] != 1 || brno.Counts["dýl"] != 1 {
		t.Errorf("Expected variants folded into canonical words, got %v", brno.Counts)
	}
}

func TestAggregateCommand_MissingRecords(t *testing.T) {
	if _, err := run(t, "", "aggregate", "--out", filepath.Join(t.TempDir(), "v.json")); err == nil {
		t.Error("Expected error without --records")
	}
}

func TestImportCommand(t *testing.T) {
	records := testutil.WriteFile(t, "answers.csv", testutil.SampleCSV)
	dbPath := filepath.Join(t.TempDir(), "okresy.db")

	for i, want := range []string{"(6 stored)", "(12 stored)"} {
		printed, err := run(t, "", "import", "--records", records, "--db-type", "sqlite", "--db-url", dbPath)
		if err != nil {
			t.Fatalf("import %d failed: %v", i+1, err)
		}
		if !strings.Contains(printed, want) {
			t.Errorf("Import %d: expected %q, got %q", i+1, want, printed)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	votes := testutil.WriteFile(t, "votes.json", testutil.SampleVotesJSON)

	tests := []struct {
		name  string
		args  []string
		wants []string
	}{
		{
			name:  "one district",
			args:  []string{"stats", "--votes", votes, "PRAHA"},
			wants: []string{"== Praha [Převládá dýl] ==", "Celkem hlasů: 3", "66,67%"},
		},
		{
			name:  "tie",
			args:  []string{"stats", "--votes", votes, "brno-mesto"},
			wants: []string{"[Remíza]", "50,00%"},
		},
		{
			name:  "no data",
			args:  []string{"stats", "--votes", votes, "Beroun"},
			wants: []string{"Pro okres Beroun chybí data."},
		},
		{
			name:  "all districts",
			args:  []string{"stats", "--votes", votes},
			wants: []string{"Brno-město", "remíza", "Kladno", "100,00%", "Total: 3 districts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printed, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("stats failed: %v", err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(printed, want) {
					t.Errorf("Expected %q in output, got:\n%s", want, printed)
				}
			}
		})
	}
}

func TestChartCommand(t *testing.T) {
	votes := testutil.WriteFile(t, "votes.json", testutil.SampleVotesJSON)
	dir := t.TempDir()

	png := filepath.Join(dir, "praha.png")
	if _, err := run(t, "", "chart", "--votes", votes, "--out", png, "Praha"); err != nil {
		t.Fatalf("png chart failed: %v", err)
	}
	data, err := os.ReadFile(png)
	if err != nil {
		t.Fatalf("Failed to read png: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("Expected PNG signature")
	}

	html := filepath.Join(dir, "praha.html")
	if _, err := run(t, "", "chart", "--votes", votes, "--out", html, "Praha"); err != nil {
		t.Fatalf("html chart failed: %v", err)
	}
	data, err = os.ReadFile(html)
	if err != nil {
		t.Fatalf("Failed to read html: %v", err)
	}
	if !strings.Contains(string(data), "echarts") {
		t.Error("Expected echarts page")
	}
}

func TestChartCommand_Errors(t *testing.T) {
	votes := testutil.WriteFile(t, "votes.json", testutil.SampleVotesJSON)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"no district", []string{"chart", "--votes", votes, "--out", filepath.Join(dir, "a.png")}},
		{"bad extension", []string{"chart", "--votes", votes, "--out", filepath.Join(dir, "a.gif"), "Praha"}},
		{"no data", []string{"chart", "--votes", votes, "--out", filepath.Join(dir, "b.png"), "Beroun"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, "", tt.args...); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestExploreCommand(t *testing.T) {
	votes := testutil.WriteFile(t, "votes.json", testutil.SampleVotesJSON)
	stdin := "hover praha\nselect Kladno\nreset\nquit\nhover Brno-město\n"

	printed, err := run(t, stdin, "explore", "--votes", votes)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}

	for _, want := range []string{
		"tooltip Praha: Převládá dýl | Celkem: 3",
		"== Kladno [Převládá později] ==",
		"panel cleared",
	} {
		if !strings.Contains(printed, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, printed)
		}
	}
	if strings.Contains(printed, "Brno") {
		t.Error("Expected input after quit to be ignored")
	}
}

func TestAdminKeyCommand(t *testing.T) {
	printed, err := run(t, "", "admin-key", "--salt", testutil.TestAdminSalt)
	if err != nil {
		t.Fatalf("admin-key failed: %v", err)
	}
	want := auth.GenerateAdminKey(auth.ScopeAdmin, testutil.TestAdminSalt)
	if strings.TrimSpace(printed) != want {
		t.Errorf("Expected %s, got %s", want, printed)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := run(t, "", "--log-level", "loud", "admin-key", "--salt", "x"); err == nil {
		t.Error("Expected error for invalid log level")
	}
}
