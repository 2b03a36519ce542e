// Package people detects character names in narrative text.
//
// A [Detector] returns candidate person names with their relative frequency,
// expressed as a percentage of all person mentions found in the text. The
// caller picks which candidates are salient.
//
// Detection can be primed with names already known to be people (for
// example, characters declared in other documents). Known names are an
// explicit argument to every call rather than shared state, so two crawls
// never influence each other.
//
// Two implementations are provided:
//   - [ProseDetector]: named-entity recognition backed by prose
//   - [LexiconDetector]: whole-word counting of a fixed vocabulary, fully
//     deterministic and suitable for tests
package people

import (
	"context"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Candidate is a detected person name.
type Candidate struct {
	Name      string  // first surface form seen in the text
	Frequency float64 // percentage of all person mentions, 0-100
}

// Detector finds person names in plain text.
type Detector interface {
	// Detect returns candidates ordered by descending frequency. known
	// lists names that must be treated as people when they occur.
	Detect(ctx context.Context, text string, known []string) ([]Candidate, error)
}

// DetectorFunc adapts an ordinary function to the [Detector] interface.
type DetectorFunc func(ctx context.Context, text string, known []string) ([]Candidate, error)

// Detect calls f.
func (f DetectorFunc) Detect(ctx context.Context, text string, known []string) ([]Candidate, error) {
	return f(ctx, text, known)
}

// tally counts mentions per case-insensitive name, remembering the first
// surface form and first-seen order.
type tally struct {
	order  []string
	counts map[string]int
	names  map[string]string
}

func newTally() *tally {
	return &tally{counts: map[string]int{}, names: map[string]string{}}
}

func (t *tally) add(name string, n int) {
	name = strings.TrimSpace(name)
	if name == "" || n <= 0 {
		return
	}
	key := strings.ToLower(name)
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
		t.names[key] = name
	}
	t.counts[key] += n
}

// atLeast raises the count for name to n, so a name found both by NER and
// by vocabulary matching is not counted twice.
func (t *tally) atLeast(name string, n int) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cur, ok := t.counts[key]; ok {
		if n > cur {
			t.counts[key] = n
		}
		return
	}
	t.add(name, n)
}

func (t *tally) candidates() []Candidate {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	if total == 0 {
		return nil
	}
	out := make([]Candidate, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, Candidate{
			Name:      t.names[key],
			Frequency: float64(t.counts[key]) * 100 / float64(total),
		})
	}
	slices.SortStableFunc(out, func(a, b Candidate) int {
		switch {
		case a.Frequency > b.Frequency:
			return -1
		case a.Frequency < b.Frequency:
			return 1
		}
		return 0
	})
	return out
}

// countWord returns the number of whole-word occurrences of name in text.
// A match must not be preceded or followed by a letter, digit or underscore.
func countWord(text, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	n := 0
	for i := 0; i <= len(text)-len(name); {
		j := strings.Index(text[i:], name)
		if j < 0 {
			break
		}
		start, end := i+j, i+j+len(name)
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			n++
		}
		i = start + len(name)
	}
	return n
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
