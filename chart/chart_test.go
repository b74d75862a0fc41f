package chart

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

func sampleLines() []models.SummaryLine {
	return []models.SummaryLine{
		{Word: "dýl", Count: 2, Percentage: 66.67},
		{Word: "později", Count: 1, Percentage: 33.33},
	}
}

func TestDonut(t *testing.T) {
	var buf bytes.Buffer
	palette := aggregate.NewPalette(aggregate.DefaultVocabulary())

	if err := Donut(&buf, "Praha", sampleLines(), palette); err != nil {
		t.Fatalf("Donut failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Praha", "40%", "75%", "#1f77b4", "#d62728"} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestBarPNG(t *testing.T) {
	var buf bytes.Buffer
	palette := aggregate.NewPalette(aggregate.DefaultVocabulary())

	if err := BarPNG(&buf, "Praha", sampleLines(), palette); err != nil {
		t.Fatalf("BarPNG failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Expected PNG signature")
	}
}

func TestNoData(t *testing.T) {
	palette := aggregate.NewPalette(aggregate.DefaultVocabulary())

	if err := Donut(&bytes.Buffer{}, "Beroun", nil, palette); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData from Donut, got %v", err)
	}
	if err := BarPNG(&bytes.Buffer{}, "Beroun", nil, palette); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData from BarPNG, got %v", err)
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor("#1f77b4"); got != (color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}) {
		t.Errorf("Unexpected colour: %v", got)
	}
	if got := hexColor("blue"); got != (color.Gray{Y: 0xcc}) {
		t.Errorf("Expected grey fallback, got %v", got)
	}
}
