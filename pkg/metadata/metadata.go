// Package metadata derives the descriptive fields of a document from its
// front matter and, when no characters are declared, from person detection
// over its text.
//
// # Characters
//
// A document that declares characters in front matter uses that list
// verbatim apart from capitalizing the first letter of each name:
//
//	---
//	characters: [alice, Bob]   ->  ["Alice", "Bob"]
//	---
//
// Declared names are remembered by the [Extractor] and handed to the
// detector as known people for every later document that does not declare
// its own list. Otherwise the body is stripped of markdown, its curly
// quotes are replaced with ASCII quotes, and detector candidates whose
// relative frequency exceeds the salience threshold (20% by default) become
// the character list.
//
// # Other fields
//
// title, brief, place and pov pass through as strings. status is
// case-folded and defaults to "final". Every front-matter field is also
// kept verbatim in [wiki.Metadata.Attributes].
package metadata

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/matzehuels/wikimap/pkg/frontmatter"
	"github.com/matzehuels/wikimap/pkg/markdown"
	"github.com/matzehuels/wikimap/pkg/people"
	"github.com/matzehuels/wikimap/pkg/wiki"
)

// DefaultSalience is the minimum relative frequency, in percent, a detected
// name needs to count as a character. Candidates must exceed it strictly.
const DefaultSalience = 20.0

// Front-matter keys with a dedicated meaning.
const (
	KeyCharacters = "characters"
	KeyTitle      = "title"
	KeyBrief      = "brief"
	KeyPlace      = "place"
	KeyStatus     = "status"
	KeyPOV        = "pov"
)

// Options configures an [Extractor].
type Options struct {
	// Salience overrides [DefaultSalience] when positive.
	Salience float64
}

// WithDefaults returns a copy of o with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.Salience <= 0 {
		o.Salience = DefaultSalience
	}
	return o
}

// Extractor builds [wiki.Metadata] for one document at a time and
// accumulates the characters seen across all documents it processed.
//
// An Extractor is meant for a single crawl and is not safe for concurrent
// use.
type Extractor struct {
	detector people.Detector
	opts     Options

	known    []string
	knownSet mapset.Set[string]
	seen     []string
	seenSet  mapset.Set[string]
}

// New creates an Extractor that falls back to detector for documents
// without declared characters.
func New(detector people.Detector, opts Options) *Extractor {
	return &Extractor{
		detector: detector,
		opts:     opts.WithDefaults(),
		knownSet: mapset.NewThreadUnsafeSet[string](),
		seenSet:  mapset.NewThreadUnsafeSet[string](),
	}
}

// Extract derives the metadata of the document at ref.
func (e *Extractor) Extract(ctx context.Context, ref wiki.Ref, attrs map[string]any, body []byte) (wiki.Metadata, error) {
	if attrs == nil {
		attrs = map[string]any{}
	}

	var characters []string
	if declared, ok := frontmatter.Strings(attrs, KeyCharacters); ok {
		characters = normalizeAll(declared)
		e.remember(characters)
	} else {
		detected, err := e.detect(ctx, body)
		if err != nil {
			return wiki.Metadata{}, fmt.Errorf("detect characters in %s: %w", ref, err)
		}
		characters = detected
	}
	e.accumulate(characters)

	return wiki.Metadata{
		Title:      frontmatter.String(attrs, KeyTitle),
		Brief:      frontmatter.String(attrs, KeyBrief),
		Place:      frontmatter.String(attrs, KeyPlace),
		POV:        frontmatter.String(attrs, KeyPOV),
		Status:     wiki.ParseStatus(frontmatter.String(attrs, KeyStatus)),
		Characters: characters,
		Attributes: attrs,
	}, nil
}

// Characters returns every character seen so far, deduplicated, in
// first-seen order.
func (e *Extractor) Characters() []string {
	return append([]string(nil), e.seen...)
}

// Known returns the declared names used to prime detection.
func (e *Extractor) Known() []string {
	return append([]string(nil), e.known...)
}

func (e *Extractor) detect(ctx context.Context, body []byte) ([]string, error) {
	if e.detector == nil {
		return nil, nil
	}
	text := NormalizeQuotes(markdown.Strip(body))
	if text == "" {
		return nil, nil
	}

	candidates, err := e.detector.Detect(ctx, text, e.Known())
	if err != nil {
		return nil, err
	}
	var names []string
	for _, c := range candidates {
		if c.Frequency > e.opts.Salience {
			names = append(names, NormalizeName(c.Name))
		}
	}
	return names, nil
}

func (e *Extractor) remember(names []string) {
	for _, n := range names {
		if n != "" && e.knownSet.Add(n) {
			e.known = append(e.known, n)
		}
	}
}

func (e *Extractor) accumulate(names []string) {
	for _, n := range names {
		if n != "" && e.seenSet.Add(n) {
			e.seen = append(e.seen, n)
		}
	}
}

// NormalizeName trims name and uppercases its first letter.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || !unicode.IsLower(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func normalizeAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = NormalizeName(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

var quoteReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`,
	"‘", "'", "’", "'", "‚", "'",
)

// NormalizeQuotes replaces typographic quotation marks with ASCII ones.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}
