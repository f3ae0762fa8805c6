package infra

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Entity labels treated as places.
const (
	LabelGPE      = "GPE"
	LabelLocation = "LOC"
)

type Entity struct {
	Text  string
	Label string
}

// EntityExtractor returns named entities in the order they appear in text.
type EntityExtractor interface {
	Extract(text string) ([]Entity, error)
}

// ProseExtractor runs prose's bundled named-entity model.
type ProseExtractor struct{}

func NewProseExtractor() *ProseExtractor {
	return &ProseExtractor{}
}

func (ProseExtractor) Extract(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("entity extraction: %w", err)
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
