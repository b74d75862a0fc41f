package aggregate

import "github.com/dialectmap/okresy/models"

// NeutralKey is the colour key for regions without data or with a tie.
const NeutralKey = "neutral"

// Palette selects a district colour from its stats.
type Palette struct {
	keys    map[string]string // normalized word -> colour key
	hex     map[string]string // colour key -> hex
	labels  map[string]string // colour key -> display word
	order   []string
	neutral string
	vocab   models.Vocabulary
}

func NewPalette(v models.Vocabulary) Palette {
	v = WithDefaults(v)
	p := Palette{
		keys:    map[string]string{},
		hex:     map[string]string{},
		labels:  map[string]string{},
		neutral: v.NeutralColor,
		vocab:   v,
	}
	for _, w := range v.Words {
		p.keys[NormalizeKey(w.Word)] = w.Key
		p.hex[w.Key] = w.Color
		p.labels[w.Key] = w.Word
		p.order = append(p.order, w.Key)
	}
	p.hex[NeutralKey] = v.NeutralColor
	p.labels[NeutralKey] = v.NeutralLabel
	return p
}

// ColorKey returns the colour key of the dominant word, or NeutralKey when
// the region has no data, is tied, or its dominant word has no colour.
func (p Palette) ColorKey(s models.RegionStats) string {
	if s.Total == 0 || s.Dominant == nil || s.IsTie {
		return NeutralKey
	}
	if key, ok := p.keys[NormalizeKey(*s.Dominant)]; ok {
		return key
	}
	return NeutralKey
}

// Hex returns the colour for a key, falling back to the neutral colour.
func (p Palette) Hex(key string) string {
	if h, ok := p.hex[key]; ok && h != "" {
		return h
	}
	return p.neutral
}

func (p Palette) Color(s models.RegionStats) string {
	return p.Hex(p.ColorKey(s))
}

// WordColor is the colour of a single word, used for chart segments.
func (p Palette) WordColor(word string) string {
	if key, ok := p.keys[NormalizeKey(word)]; ok {
		return p.Hex(key)
	}
	return p.neutral
}

// Label returns the display word for a colour key.
func (p Palette) Label(key string) string {
	if l, ok := p.labels[key]; ok {
		return l
	}
	return key
}

// Keys lists the word colour keys in vocabulary order, without NeutralKey.
func (p Palette) Keys() []string {
	return append([]string(nil), p.order...)
}

func (p Palette) Vocabulary() models.Vocabulary {
	return p.vocab
}
