package aggregate

import (
	"testing"

	"github.com/dialectmap/okresy/models"
)

func TestSummary(t *testing.T) {
	records := []models.SurveyRecord{
		rec("jindy", "A"), rec("později", "A"), rec("dýl", "A"),
		rec("dýl", "A"), rec("později", "A"), rec("dýl", "A"),
	}
	lines := Summary(ComputeStats(records, "A"))

	want := []struct {
		word  string
		count int
	}{
		{"dýl", 3},
		{"později", 2},
		{"jindy", 1},
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(lines))
	}
	for i, w := range want {
		if lines[i].Word != w.word || lines[i].Count != w.count {
			t.Errorf("line %d: expected %s=%d, got %s=%d", i, w.word, w.count, lines[i].Word, lines[i].Count)
		}
	}
	if Round2(lines[0].Percentage) != 50 {
		t.Errorf("Expected 50%% for dýl, got %v", lines[0].Percentage)
	}
}

func TestSummary_TieKeepsFirstSeenOrder(t *testing.T) {
	lines := Summary(ComputeStats([]models.SurveyRecord{rec("později", "A"), rec("dýl", "A")}, "A"))
	if lines[0].Word != "později" || lines[1].Word != "dýl" {
		t.Errorf("Expected first seen order on tie, got %+v", lines)
	}
}

func TestSummary_Empty(t *testing.T) {
	if lines := Summary(ComputeStats(nil, "A")); len(lines) != 0 {
		t.Errorf("Expected no lines, got %+v", lines)
	}
}
