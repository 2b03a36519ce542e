package people

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"
)

// personLabel is the entity label prose assigns to people.
const personLabel = "PERSON"

// ProseDetector finds people with prose's named-entity recognizer, then
// counts occurrences of each known name so primed names are never missed.
type ProseDetector struct{}

// NewProseDetector returns a prose-backed detector.
func NewProseDetector() *ProseDetector {
	return &ProseDetector{}
}

// Detect implements [Detector].
func (d *ProseDetector) Detect(ctx context.Context, text string, known []string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("analyze text: %w", err)
	}

	t := newTally()
	for _, ent := range doc.Entities() {
		if ent.Label == personLabel {
			t.add(ent.Text, 1)
		}
	}
	for _, name := range known {
		t.atLeast(name, countWord(text, name))
	}
	return t.candidates(), nil
}

var _ Detector = (*ProseDetector)(nil)
