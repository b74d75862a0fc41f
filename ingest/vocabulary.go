package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dialectmap/okresy/aggregate"
	"github.com/dialectmap/okresy/models"
)

var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// ReadVocabulary decodes a YAML vocabulary file.
func ReadVocabulary(r io.Reader) (models.Vocabulary, error) {
	var v models.Vocabulary
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && err != io.EOF {
		return models.Vocabulary{}, fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	keys := make(map[string]bool)
	for i, w := range v.Words {
		if w.Word == "" {
			return models.Vocabulary{}, fmt.Errorf("%w: word %d has no text", ErrInvalidVocabulary, i+1)
		}
		key := w.Key
		if key == "" {
			key = aggregate.NormalizeKey(w.Word)
		}
		if keys[key] {
			return models.Vocabulary{}, fmt.Errorf("%w: duplicate key %q", ErrInvalidVocabulary, key)
		}
		keys[key] = true
	}
	return aggregate.WithDefaults(v), nil
}

// LoadVocabulary reads the vocabulary at path, or returns the built-in one
// when path is empty.
func LoadVocabulary(path string) (models.Vocabulary, error) {
	if path == "" {
		return aggregate.WithDefaults(aggregate.DefaultVocabulary()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return models.Vocabulary{}, err
	}
	defer f.Close()
	return ReadVocabulary(f)
}
