// Package frontmatter splits and decodes the structured header of a
// markdown document.
//
// Two header syntaxes are recognized at the very start of a file:
//
//	---            +++
//	title: Intro   title = "Intro"
//	---            +++
//
// The first is decoded as YAML, the second as TOML. A document without a
// header has no attributes and its whole content is the body.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a front-matter block.
type Format int

const (
	// FormatNone means the document has no front matter.
	FormatNone Format = iota
	// FormatYAML is a "---" delimited YAML block.
	FormatYAML
	// FormatTOML is a "+++" delimited TOML block.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "none"
	}
}

// ErrMissingClosingDelimiter indicates the document started with a
// front-matter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

var delimiters = []struct {
	mark   string
	format Format
}{
	{"---", FormatYAML},
	{"+++", FormatTOML},
}

// Document is a parsed file: decoded attributes plus the markdown body.
type Document struct {
	Format     Format
	Attributes map[string]any // never nil
	Body       []byte
}

// Parse splits raw into front matter and body and decodes the front matter.
func Parse(raw []byte) (Document, error) {
	fm, body, format, err := Split(raw)
	if err != nil {
		return Document{}, err
	}

	var attrs map[string]any
	switch format {
	case FormatYAML:
		attrs, err = ParseYAML(fm)
	case FormatTOML:
		attrs, err = ParseTOML(fm)
	default:
		attrs = map[string]any{}
	}
	if err != nil {
		return Document{}, fmt.Errorf("decode %s frontmatter: %w", format, err)
	}
	return Document{Format: format, Attributes: attrs, Body: body}, nil
}

// Split separates front matter from the markdown body.
//
// If content does not start with a delimiter line, format is [FormatNone]
// and body is the full input. A closing delimiter may be the last line of
// the file with or without a trailing newline.
func Split(content []byte) (frontmatter []byte, body []byte, format Format, err error) {
	nl := detectNewline(content)
	for _, d := range delimiters {
		open := []byte(d.mark + nl)
		if !bytes.HasPrefix(content, open) {
			continue
		}

		rest := content[len(open):]
		closeLine := []byte(d.mark + nl)
		if bytes.HasPrefix(rest, closeLine) {
			return []byte{}, rest[len(closeLine):], d.format, nil
		}
		if bytes.Equal(rest, []byte(d.mark)) {
			return []byte{}, []byte{}, d.format, nil
		}

		closeSeq := []byte(nl + d.mark + nl)
		if idx := bytes.Index(rest, closeSeq); idx >= 0 {
			return rest[:idx+len(nl)], rest[idx+len(closeSeq):], d.format, nil
		}
		if tail := []byte(nl + d.mark); bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(d.mark)], []byte{}, d.format, nil
		}
		return nil, nil, FormatNone, ErrMissingClosingDelimiter
	}
	return nil, content, FormatNone, nil
}

// ParseYAML parses raw YAML front matter (without delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// ParseTOML parses raw TOML front matter (without delimiters) into a map.
func ParseTOML(frontmatter []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return fields, nil
	}
	if _, err := toml.Decode(string(frontmatter), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
