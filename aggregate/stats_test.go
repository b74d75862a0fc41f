package aggregate

import (
	"math"
	"testing"

	"github.com/dialectmap/okresy/models"
)

func rec(word, region string) models.SurveyRecord {
	return models.SurveyRecord{Word: word, Region: region}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name         string
		records      []models.SurveyRecord
		region       string
		wantTotal    int
		wantCounts   map[string]int
		wantDominant string // "" means nil
		wantTie      bool
	}{
		{
			name:      "no records",
			records:   nil,
			region:    "A",
			wantTotal: 0,
		},
		{
			name:         "plurality",
			records:      []models.SurveyRecord{rec("dýl", "A"), rec("dýl", "A"), rec("později", "A")},
			region:       "A",
			wantTotal:    3,
			wantCounts:   map[string]int{"dýl": 2, "později": 1},
			wantDominant: "dýl",
		},
		{
			name:         "tie keeps first seen word",
			records:      []models.SurveyRecord{rec("dýl", "A"), rec("později", "A")},
			region:       "A",
			wantTotal:    2,
			wantCounts:   map[string]int{"dýl": 1, "později": 1},
			wantDominant: "dýl",
			wantTie:      true,
		},
		{
			name:         "tie order follows records",
			records:      []models.SurveyRecord{rec("později", "A"), rec("dýl", "A")},
			region:       "A",
			wantTotal:    2,
			wantCounts:   map[string]int{"dýl": 1, "později": 1},
			wantDominant: "později",
			wantTie:      true,
		},
		{
			name:         "other regions ignored",
			records:      []models.SurveyRecord{rec("dýl", "A"), rec("později", "B"), rec("později", "B")},
			region:       "A",
			wantTotal:    1,
			wantCounts:   map[string]int{"dýl": 1},
			wantDominant: "dýl",
		},
		{
			name:         "case and diacritics insensitive region",
			records:      []models.SurveyRecord{rec("dýl", "Žďár nad Sázavou"), rec("dýl", "ZDAR NAD SAZAVOU")},
			region:       "žďár nad sázavou",
			wantTotal:    2,
			wantCounts:   map[string]int{"dýl": 2},
			wantDominant: "dýl",
		},
		{
			name:         "malformed records skipped",
			records:      []models.SurveyRecord{rec("", "A"), rec("dýl", ""), rec("  ", "A"), rec("dýl", "A")},
			region:       "A",
			wantTotal:    1,
			wantCounts:   map[string]int{"dýl": 1},
			wantDominant: "dýl",
		},
		{
			name:      "empty region requested",
			records:   []models.SurveyRecord{rec("dýl", "A")},
			region:    "",
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeStats(tt.records, tt.region)

			if s.Total != tt.wantTotal {
				t.Errorf("Expected total %d, got %d", tt.wantTotal, s.Total)
			}
			if len(s.Counts) != len(tt.wantCounts) {
				t.Errorf("Expected %d words, got %d (%v)", len(tt.wantCounts), len(s.Counts), s.Counts)
			}
			for w, c := range tt.wantCounts {
				if s.Counts[w] != c {
					t.Errorf("Expected count %d for %q, got %d", c, w, s.Counts[w])
				}
			}
			if tt.wantDominant == "" {
				if s.Dominant != nil {
					t.Errorf("Expected nil dominant, got %q", *s.Dominant)
				}
			} else if s.Dominant == nil || *s.Dominant != tt.wantDominant {
				t.Errorf("Expected dominant %q, got %v", tt.wantDominant, s.Dominant)
			}
			if s.IsTie != tt.wantTie {
				t.Errorf("Expected is_tie %v, got %v", tt.wantTie, s.IsTie)
			}
		})
	}
}

func TestComputeStats_Percentages(t *testing.T) {
	records := []models.SurveyRecord{rec("dýl", "A"), rec("dýl", "A"), rec("později", "A")}
	s := ComputeStats(records, "A")

	if got := Round2(s.Percentages["dýl"]); got != 66.67 {
		t.Errorf("Expected 66.67 for dýl, got %v", got)
	}
	if got := Round2(s.Percentages["později"]); got != 33.33 {
		t.Errorf("Expected 33.33 for později, got %v", got)
	}

	sum := 0.0
	for _, p := range s.Percentages {
		sum += p
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("Expected percentages to sum to 100, got %v", sum)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats([]models.SurveyRecord{}, "A")

	if s.Dominant != nil {
		t.Error("Expected nil dominant for empty input")
	}
	if s.IsTie {
		t.Error("Expected no tie for empty input")
	}
	if len(s.Counts) != 0 || len(s.Percentages) != 0 {
		t.Errorf("Expected empty counts and percentages, got %v %v", s.Counts, s.Percentages)
	}
	if s.Name != "A" {
		t.Errorf("Expected name 'A', got '%s'", s.Name)
	}
}

func TestComputeStats_TotalMatchesRecords(t *testing.T) {
	records := []models.SurveyRecord{
		rec("dýl", "Praha"), rec("později", "PRAHA"), rec("dýl", "Brno"),
		rec("později", "praha"), rec("jindy", "Praha"), rec("dýl", "Ostrava"),
	}
	for _, region := range []string{"Praha", "Brno", "Ostrava", "Kladno"} {
		want := 0
		for _, r := range records {
			if NormalizeKey(r.Region) == NormalizeKey(region) {
				want++
			}
		}
		s := ComputeStats(records, region)
		if s.Total != want {
			t.Errorf("%s: expected total %d, got %d", region, want, s.Total)
		}

		sum := 0
		for _, c := range s.Counts {
			sum += c
		}
		if sum != s.Total {
			t.Errorf("%s: counts sum %d != total %d", region, sum, s.Total)
		}
	}
}

func TestComputeAllStats(t *testing.T) {
	records := []models.SurveyRecord{
		rec("dýl", "Praha"), rec("později", "Brno"), rec("později", "Brno"),
		rec("dýl", "Brno"),
	}

	all := ComputeAllStats(records, []string{"PRAHA", "Brno", "Kladno"})

	if len(all) != 3 {
		t.Fatalf("Expected 3 regions, got %d", len(all))
	}
	for _, region := range []string{"PRAHA", "Brno", "Kladno"} {
		want := ComputeStats(records, region)
		got, ok := all[NormalizeKey(region)]
		if !ok {
			t.Fatalf("Missing region %s", region)
		}
		if got.Total != want.Total || got.DominantWord() != want.DominantWord() || got.IsTie != want.IsTie {
			t.Errorf("%s: ComputeAllStats %+v differs from ComputeStats %+v", region, got, want)
		}
	}
	if all["kladno"].Dominant != nil {
		t.Error("Expected no data for Kladno")
	}
}

func TestComputeAll_UsesFirstSeenName(t *testing.T) {
	records := []models.SurveyRecord{rec("dýl", "Hlavní město Praha"), rec("dýl", "HLAVNI MESTO PRAHA")}
	all := Aggregator{}.ComputeAll(records)

	s, ok := all["hlavni mesto praha"]
	if !ok {
		t.Fatalf("Expected key 'hlavni mesto praha', got %v", all)
	}
	if s.Name != "Hlavní město Praha" {
		t.Errorf("Expected first seen name, got '%s'", s.Name)
	}
	if s.Total != 2 {
		t.Errorf("Expected total 2, got %d", s.Total)
	}
}

func TestAggregator_CustomKey(t *testing.T) {
	exact := New(func(s string) string { return s })
	records := []models.SurveyRecord{rec("dýl", "Praha"), rec("dýl", "PRAHA")}

	if s := exact.ComputeStats(records, "Praha"); s.Total != 1 {
		t.Errorf("Expected exact matching to count 1 record, got %d", s.Total)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Praha", "praha"},
		{"PRAHA", "praha"},
		{"  Ústí nad   Labem ", "usti nad labem"},
		{"Žďár nad Sázavou", "zdar nad sazavou"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if NormalizeKey("Praha") != NormalizeKey("PRAHA") {
		t.Error("Expected Praha and PRAHA to share a key")
	}
}
