// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

const (
	borderColor   = "#1f2937"
	selectedColor = "#0f172a"

	fillWithData    = 0.65
	fillWithoutData = 0.25
	fillHighlighted = 0.75

	LegendTitle = "Legenda"
	SurveyLabel = "Vyplnit dotazník"
)

// Presenter turns region stats into the texts, styles and legend shown on
// the map. Numbers are formatted the Czech way.
type Presenter struct {
	palette aggregate.Palette
	tag     language.Tag
}

func NewPresenter(palette aggregate.Palette) Presenter {
	return Presenter{palette: palette, tag: language.Czech}
}

func (p Presenter) Palette() aggregate.Palette {
	return p.palette
}

// FormatCount groups digits per the Czech locale.
func (p Presenter) FormatCount(n int) string {
	return message.NewPrinter(p.tag).Sprintf("%d", n)
}

// FormatPercent renders two decimals with a decimal comma, e.g. "66,67%".
func FormatPercent(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1) + "%"
}

func (p Presenter) headline(s models.RegionStats) string {
	switch {
	case s.Total == 0 || s.Dominant == nil:
		return "Bez dat"
	case s.IsTie:
		return "Remíza"
	default:
		return "Převládá " + *s.Dominant
	}
}

func (p Presenter) Tooltip(name string, s models.RegionStats) models.Tooltip {
	t := models.Tooltip{
		Name:  name,
		Lines: []string{p.headline(s)},
	}
	if s.Total > 0 {
		t.Lines = append(t.Lines, "Celkem: "+p.FormatCount(s.Total))
	}
	return t
}

func (p Presenter) Panel(name string, s models.RegionStats) models.Panel {
	if s.Total == 0 {
		return models.Panel{
			Name:       name,
			Message:    "Pro okres " + name + " chybí data.",
			BadgeClass: models.BadgeNoData,
			BadgeLabel: p.headline(s),
		}
	}

	panel := models.Panel{
		Name:       name,
		HasData:    true,
		BadgeClass: p.badgeClass(s),
		BadgeLabel: p.headline(s),
		Total:      "Celkem hlasů: " + p.FormatCount(s.Total),
	}
	if share, ok := aggregate.Share(s); ok {
		panel.Share = FormatPercent(share)
	}
	for _, line := range aggregate.Summary(s) {
		panel.Items = append(panel.Items, models.PanelItem{
			Word:       line.Word,
			Label:      p.label(line.Word),
			Count:      p.FormatCount(line.Count),
			Percentage: FormatPercent(line.Percentage),
		})
	}
	return panel
}

// badgeClass is "tie" for a tie, otherwise the colour key, which is
// aggregate.NeutralKey for a dominant word without a colour.
func (p Presenter) badgeClass(s models.RegionStats) string {
	if s.IsTie {
		return models.BadgeTie
	}
	return p.palette.ColorKey(s)
}

func (p Presenter) label(word string) string {
	for _, w := range p.palette.Vocabulary().Words {
		if aggregate.NormalizeKey(w.Word) == aggregate.NormalizeKey(word) {
			return w.Word
		}
	}
	return word
}

// BaseStyle is the resting style of a district.
func (p Presenter) BaseStyle(s models.RegionStats) models.Style {
	opacity := fillWithoutData
	if s.Total > 0 {
		opacity = fillWithData
	}
	return models.Style{
		FillColor:   p.palette.Color(s),
		FillOpacity: opacity,
		Color:       borderColor,
		Weight:      1.2,
		Opacity:     1,
	}
}

func (p Presenter) HoverStyle(s models.RegionStats) models.Style {
	style := p.BaseStyle(s)
	style.Weight = 2
	style.FillOpacity = fillHighlighted
	return style
}

func (p Presenter) SelectedStyle(s models.RegionStats) models.Style {
	style := p.BaseStyle(s)
	style.Weight = 3
	style.Color = selectedColor
	style.FillOpacity = fillHighlighted
	return style
}

// Legend lists every word colour followed by the neutral entry.
func (p Presenter) Legend() models.Legend {
	legend := models.Legend{
		Title:     LegendTitle,
		SurveyURL: p.palette.Vocabulary().SurveyURL,
	}
	for _, key := range append(p.palette.Keys(), aggregate.NeutralKey) {
		legend.Entries = append(legend.Entries, models.LegendEntry{
			Key:   key,
			Label: p.palette.Label(key),
			Color: p.palette.Hex(key),
		})
	}
	return legend
}
