package models

import "time"

// Dataset modes
const (
	ModeRaw         = "raw"
	ModePrecomputed = "precomputed"
)

// Badge classes for the info panel
const (
	BadgeTie    = "tie"
	BadgeNoData = "none"
)

// Input types

// SurveyRecord is one survey response. Region is the display label as it
// appears in the source; matching is done on its normalized key.
type SurveyRecord struct {
	Word   string `json:"word"`
	Region string `json:"region"`
}

// word -> occurrence count within one region
type WordCount map[string]int

// PrecomputedStats is the votes.json shape, keyed by district display name.
type PrecomputedStats struct {
	Total         int                `json:"total"`
	Counts        WordCount          `json:"counts"`
	Percentages   map[string]float64 `json:"percentages"`
	Dominant      string             `json:"dominant,omitempty"`
	DominantShare float64            `json:"dominantShare"`
}

// Domain types

type RegionStats struct {
	Region      string             `json:"region"` // normalized key
	Name        string             `json:"name"`   // display name
	Counts      WordCount          `json:"counts"`
	Words       []string           `json:"words"` // first-seen order
	Total       int                `json:"total"`
	Percentages map[string]float64 `json:"percentages"`
	Dominant    *string            `json:"dominant"`
	IsTie       bool               `json:"is_tie"`
}

// DominantWord returns the dominant word or "" when the region has no data.
func (s RegionStats) DominantWord() string {
	if s.Dominant == nil {
		return ""
	}
	return *s.Dominant
}

type SummaryLine struct {
	Word       string  `json:"word"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type VocabularyWord struct {
	Word     string   `yaml:"word" json:"word"`
	Key      string   `yaml:"key" json:"key"`
	Color    string   `yaml:"color" json:"color"`
	Variants []string `yaml:"variants,omitempty" json:"variants,omitempty"`
}

// Vocabulary lists the accepted answers, their colours and the GeoJSON
// property names tried for a district name.
type Vocabulary struct {
	Words        []VocabularyWord `yaml:"words" json:"words"`
	NeutralColor string           `yaml:"neutral_color" json:"neutral_color"`
	NeutralLabel string           `yaml:"neutral_label" json:"neutral_label"`
	NameAliases  []string         `yaml:"name_aliases" json:"name_aliases"`
	SurveyURL    string           `yaml:"survey_url,omitempty" json:"survey_url,omitempty"`
}

// Presentation types

type Style struct {
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
}

type LegendEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type Legend struct {
	Title     string        `json:"title"`
	Entries   []LegendEntry `json:"entries"`
	SurveyURL string        `json:"survey_url,omitempty"`
}

type Tooltip struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

type PanelItem struct {
	Word       string `json:"word"`
	Label      string `json:"label"`
	Count      string `json:"count"`
	Percentage string `json:"percentage"`
}

type Panel struct {
	Name       string      `json:"name"`
	HasData    bool        `json:"has_data"`
	Message    string      `json:"message,omitempty"`
	BadgeClass string      `json:"badge_class,omitempty"`
	BadgeLabel string      `json:"badge_label,omitempty"`
	Share      string      `json:"share,omitempty"`
	Total      string      `json:"total,omitempty"`
	Items      []PanelItem `json:"items,omitempty"`
}

// Response types

type RegionResponse struct {
	Stats    RegionStats   `json:"stats"`
	Summary  []SummaryLine `json:"summary"`
	ColorKey string        `json:"color_key"`
	Color    string        `json:"color"`
	Panel    Panel         `json:"panel"`
}

type RegionsResponse struct {
	Mode     string        `json:"mode"`
	LoadedAt time.Time     `json:"loaded_at"`
	Regions  []RegionStats `json:"regions"`
}

type ReloadResponse struct {
	Mode     string    `json:"mode"`
	Regions  int       `json:"regions"`
	Records  int       `json:"records"`
	Features int       `json:"features"`
	LoadedAt time.Time `json:"loaded_at"`
}

type Snapshot struct {
	ID         string                 `json:"id"`
	ComputedAt time.Time              `json:"computed_at"`
	CreatedBy  string                 `json:"created_by,omitempty"`
	Regions    map[string]RegionStats `json:"regions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
