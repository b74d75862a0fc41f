package aggregate

import "github.com/dialectmap/okresy/models"

const (
	DefaultNeutralColor = "#cccccc"
	DefaultNeutralLabel = "bez dat"
)

// DefaultVocabulary is the dýl/později survey.
func DefaultVocabulary() models.Vocabulary {
	return models.Vocabulary{
		Words: []models.VocabularyWord{
			{Word: "dýl", Key: "dyl", Color: "#1f77b4", Variants: []string{"dyl"}},
			{Word: "později", Key: "pozdeji", Color: "#d62728", Variants: []string{"pozdeji"}},
		},
		NeutralColor: DefaultNeutralColor,
		NeutralLabel: DefaultNeutralLabel,
		SurveyURL:    "https://docs.google.com/forms/d/e/1FAIpQLSdQa9-3ygqWKbs_nBXb0UjPG2cN0GW_7Eo0APm6pfpSIjjx2g/viewform?usp=dialog",
	}
}

// WithDefaults fills the neutral colour/label and derives missing word keys.
func WithDefaults(v models.Vocabulary) models.Vocabulary {
	if v.NeutralColor == "" {
		v.NeutralColor = DefaultNeutralColor
	}
	if v.NeutralLabel == "" {
		v.NeutralLabel = DefaultNeutralLabel
	}
	words := make([]models.VocabularyWord, len(v.Words))
	for i, w := range v.Words {
		w.Word = CleanText(w.Word)
		if w.Key == "" {
			w.Key = NormalizeKey(w.Word)
		}
		words[i] = w
	}
	v.Words = words
	return v
}

// Classifier maps raw answers to canonical vocabulary words.
type Classifier struct {
	canonical map[string]string
}

// NewClassifier indexes every word, key and variant by its normalized form.
// A vocabulary without words accepts any non-empty answer.
func NewClassifier(v models.Vocabulary) Classifier {
	if len(v.Words) == 0 {
		return Classifier{}
	}
	c := Classifier{canonical: make(map[string]string)}
	for _, w := range WithDefaults(v).Words {
		c.canonical[NormalizeKey(w.Word)] = w.Word
		c.canonical[NormalizeKey(w.Key)] = w.Word
		for _, variant := range w.Variants {
			c.canonical[NormalizeKey(variant)] = w.Word
		}
	}
	return c
}

// Canonical returns the vocabulary word for a raw answer. ok is false for
// empty answers and, with a closed vocabulary, for unknown ones.
func (c Classifier) Canonical(raw string) (string, bool) {
	w := CleanText(raw)
	if w == "" {
		return "", false
	}
	if c.canonical == nil {
		return w, true
	}
	word, ok := c.canonical[NormalizeKey(w)]
	return word, ok
}
