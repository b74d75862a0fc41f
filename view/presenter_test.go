package view

import (
	"strings"
	"testing"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

func records(pairs ...string) []models.SurveyRecord {
	var out []models.SurveyRecord
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.SurveyRecord{Word: pairs[i], Region: pairs[i+1]})
	}
	return out
}

func newTestPresenter() Presenter {
	return NewPresenter(aggregate.NewPalette(aggregate.DefaultVocabulary()))
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{66.666666, "66,67%"},
		{100, "100,00%"},
		{0, "0,00%"},
		{33.333333, "33,33%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestFormatCount(t *testing.T) {
	p := newTestPresenter()

	if got := p.FormatCount(42); got != "42" {
		t.Errorf("Expected 42, got %s", got)
	}

	got := p.FormatCount(12345)
	if !strings.HasPrefix(got, "12") || !strings.HasSuffix(got, "345") || got == "12345" {
		t.Errorf("Expected grouped digits, got %q", got)
	}
}

func TestTooltip(t *testing.T) {
	p := newTestPresenter()

	tests := []struct {
		name    string
		records []models.SurveyRecord
		want    []string
	}{
		{"dominant", records("dýl", "Praha", "dýl", "Praha", "později", "Praha"), []string{"Převládá dýl", "Celkem: 3"}},
		{"tie", records("dýl", "Praha", "později", "Praha"), []string{"Remíza", "Celkem: 2"}},
		{"no data", nil, []string{"Bez dat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip := p.Tooltip("Praha", aggregate.ComputeStats(tt.records, "Praha"))
			if tip.Name != "Praha" {
				t.Errorf("Expected name Praha, got %s", tip.Name)
			}
			if strings.Join(tip.Lines, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Expected lines %v, got %v", tt.want, tip.Lines)
			}
		})
	}
}

func TestPanel(t *testing.T) {
	p := newTestPresenter()
	stats := aggregate.ComputeStats(records("později", "Kladno", "dýl", "Kladno", "později", "Kladno"), "Kladno")

	panel := p.Panel("Kladno", stats)

	if !panel.HasData {
		t.Fatal("Expected panel with data")
	}
	if panel.BadgeClass != "pozdeji" {
		t.Errorf("Expected badge class pozdeji, got %s", panel.BadgeClass)
	}
	if panel.BadgeLabel != "Převládá později" {
		t.Errorf("Expected badge label, got %s", panel.BadgeLabel)
	}
	if panel.Share != "66,67%" {
		t.Errorf("Expected share 66,67%%, got %s", panel.Share)
	}
	if panel.Total != "Celkem hlasů: 3" {
		t.Errorf("Expected total line, got %s", panel.Total)
	}
	if len(panel.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(panel.Items))
	}
	if panel.Items[0].Word != "později" || panel.Items[0].Count != "2" || panel.Items[0].Percentage != "66,67%" {
		t.Errorf("Unexpected first item: %+v", panel.Items[0])
	}
	if panel.Items[1].Word != "dýl" || panel.Items[1].Percentage != "33,33%" {
		t.Errorf("Unexpected second item: %+v", panel.Items[1])
	}
}

func TestPanel_TieAndNoData(t *testing.T) {
	p := newTestPresenter()

	tie := p.Panel("Praha", aggregate.ComputeStats(records("dýl", "Praha", "později", "Praha"), "Praha"))
	if tie.BadgeClass != models.BadgeTie || tie.BadgeLabel != "Remíza" {
		t.Errorf("Expected tie badge, got %s %s", tie.BadgeClass, tie.BadgeLabel)
	}
	if tie.Share != "50,00%" {
		t.Errorf("Expected share 50,00%%, got %s", tie.Share)
	}

	empty := p.Panel("Beroun", aggregate.ComputeStats(nil, "Beroun"))
	if empty.HasData {
		t.Error("Expected panel without data")
	}
	if empty.Message != "Pro okres Beroun chybí data." {
		t.Errorf("Unexpected message: %s", empty.Message)
	}
	if empty.BadgeClass != models.BadgeNoData || len(empty.Items) != 0 {
		t.Errorf("Unexpected empty panel: %+v", empty)
	}
}

func TestPanel_UncolouredDominant(t *testing.T) {
	p := NewPresenter(aggregate.NewPalette(models.Vocabulary{}))

	panel := p.Panel("Kladno", aggregate.ComputeStats(records("jindy", "Kladno", "jindy", "Kladno", "dýl", "Kladno"), "Kladno"))
	if panel.BadgeClass != aggregate.NeutralKey {
		t.Errorf("Expected badge class %s, got %s", aggregate.NeutralKey, panel.BadgeClass)
	}
	if panel.BadgeLabel != "Převládá jindy" {
		t.Errorf("Expected label 'Převládá jindy', got %s", panel.BadgeLabel)
	}

	dyl := newTestPresenter().Panel("Praha", aggregate.ComputeStats(records("dýl", "Praha"), "Praha"))
	if dyl.BadgeClass != "dyl" {
		t.Errorf("Expected badge class dyl, got %s", dyl.BadgeClass)
	}
}

func TestStyles(t *testing.T) {
	p := newTestPresenter()
	dyl := aggregate.ComputeStats(records("dýl", "Praha"), "Praha")
	empty := aggregate.ComputeStats(nil, "Praha")

	base := p.BaseStyle(dyl)
	if base.FillColor != "#1f77b4" || base.FillOpacity != 0.65 || base.Weight != 1.2 || base.Color != "#1f2937" {
		t.Errorf("Unexpected base style: %+v", base)
	}

	none := p.BaseStyle(empty)
	if none.FillColor != "#cccccc" || none.FillOpacity != 0.25 {
		t.Errorf("Unexpected no-data style: %+v", none)
	}

	hover := p.HoverStyle(dyl)
	if hover.Weight != 2 || hover.FillOpacity != 0.75 || hover.FillColor != base.FillColor {
		t.Errorf("Unexpected hover style: %+v", hover)
	}

	selected := p.SelectedStyle(dyl)
	if selected.Weight != 3 || selected.Color != "#0f172a" || selected.FillOpacity != 0.75 {
		t.Errorf("Unexpected selected style: %+v", selected)
	}
}

func TestLegend(t *testing.T) {
	legend := newTestPresenter().Legend()

	if legend.Title != "Legenda" {
		t.Errorf("Expected title Legenda, got %s", legend.Title)
	}
	if len(legend.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(legend.Entries))
	}

	want := []models.LegendEntry{
		{Key: "dyl", Label: "dýl", Color: "#1f77b4"},
		{Key: "pozdeji", Label: "později", Color: "#d62728"},
		{Key: aggregate.NeutralKey, Label: "bez dat", Color: "#cccccc"},
	}
	for i, w := range want {
		if legend.Entries[i] != w {
			t.Errorf("Entry %d: expected %+v, got %+v", i, w, legend.Entries[i])
		}
	}
	if legend.SurveyURL == "" {
		t.Error("Expected survey URL in legend")
	}
}
