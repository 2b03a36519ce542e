package people

import "context"

// LexiconDetector counts whole-word, case-sensitive occurrences of a fixed
// vocabulary plus the known names passed to each call. It performs no
// language analysis.
type LexiconDetector struct {
	names []string
}

// NewLexiconDetector returns a detector for the given names.
func NewLexiconDetector(names ...string) *LexiconDetector {
	return &LexiconDetector{names: append([]string(nil), names...)}
}

// Detect implements [Detector].
func (d *LexiconDetector) Detect(ctx context.Context, text string, known []string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := newTally()
	for _, name := range d.names {
		t.atLeast(name, countWord(text, name))
	}
	for _, name := range known {
		t.atLeast(name, countWord(text, name))
	}
	return t.candidates(), nil
}

var _ Detector = (*LexiconDetector)(nil)
