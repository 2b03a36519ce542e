package dot

import (
	"regexp"
	"strings"
)

// EdgeKind is the rendering treatment of a link.
type EdgeKind int

const (
	// Suppressed links are not drawn.
	Suppressed EdgeKind = iota
	// Primary links form the main reading path.
	Primary
	// Aside links jump ahead without pulling the layout.
	Aside
	// Labeled links carry their anchor (or its parenthesized part) as label.
	Labeled
	// Lateral links are labeled alternatives kept on the same rank.
	Lateral
)

func (k EdgeKind) String() string {
	switch k {
	case Suppressed:
		return "suppressed"
	case Primary:
		return "primary"
	case Aside:
		return "aside"
	case Labeled:
		return "labeled"
	case Lateral:
		return "lateral"
	}
	return "unknown"
}

// Edge is the classification of one anchor.
type Edge struct {
	Kind  EdgeKind
	Label string // unwrapped; empty unless Kind is Labeled or Lateral
}

var (
	parenRe = regexp.MustCompile(`(?s)\((.*?)\)`)
	altRe   = regexp.MustCompile(`\b(Alt|Alternate)\b`)
)

// Classify decides how a link with the given anchor text is drawn.
func Classify(anchor string) Edge {
	if strings.HasPrefix(anchor, "Prev") {
		return Edge{Kind: Suppressed}
	}

	trimmed := strings.TrimSpace(anchor)
	switch trimmed {
	case "Next":
		return Edge{Kind: Primary}
	case "Later":
		return Edge{Kind: Aside}
	}

	label := trimmed
	if m := parenRe.FindStringSubmatch(anchor); m != nil {
		if inner := strings.TrimSpace(m[1]); inner != "" {
			label = inner
		}
	}
	if altRe.MatchString(anchor) {
		return Edge{Kind: Lateral, Label: label}
	}
	return Edge{Kind: Labeled, Label: label}
}
