// Package studyset reads study-set files: YAML batches of content items to
// register as flashcards.
package studyset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benkyo-app/benkyo/internal/srs"
)

// Entry is one batch of content items of a single content type.
type Entry struct {
	ContentType string  `yaml:"content_type"`
	ContentIDs  []int64 `yaml:"content_ids"`
}

// Batch is a validated study-set batch ready to be added to a user's deck.
type Batch struct {
	ContentType srs.ContentType
	ContentIDs  []int64
}

// ReadFile parses a study-set YAML file and validates its content types.
func ReadFile(path string) ([]Batch, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return parse(content)
}

func parse(content []byte) ([]Batch, error) {
	var entries []Entry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(study set) > %w", err)
	}

	batches := make([]Batch, 0, len(entries))
	for i, entry := range entries {
		contentType, err := srs.ParseContentType(entry.ContentType)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if len(entry.ContentIDs) == 0 {
			return nil, fmt.Errorf("entry %d (%s): no content ids", i, entry.ContentType)
		}
		batches = append(batches, Batch{ContentType: contentType, ContentIDs: entry.ContentIDs})
	}
	return batches, nil
}
