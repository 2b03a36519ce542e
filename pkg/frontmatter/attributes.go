package frontmatter

import (
	"fmt"
	"strings"
)

// String returns attribute key as a trimmed string. Scalars of other types
// are formatted with fmt; lists and maps yield "".
func String(attrs map[string]any, key string) string {
	switch v := attrs[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any, map[string]any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Strings returns a multi-valued attribute. A scalar becomes a one-element
// list; ok is false when the key is absent or null.
func Strings(attrs map[string]any, key string) (values []string, ok bool) {
	switch v := attrs[key].(type) {
	case nil:
		return nil, false
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if e == nil {
				continue
			}
			out = append(out, strings.TrimSpace(fmt.Sprint(e)))
		}
		return out, true
	case []string:
		return append([]string(nil), v...), true
	case string:
		return []string{strings.TrimSpace(v)}, true
	default:
		return []string{fmt.Sprint(v)}, true
	}
}
