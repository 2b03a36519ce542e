package errors

import (
	"strings"
	"unicode"
)

// maxSeedPathLen bounds seed arguments; longer values are almost always a
// pasted document rather than a path.
const maxSeedPathLen = 4096

// ValidateSeedPath checks a command-line seed argument before it is turned
// into a document reference.
//
// It rejects empty or whitespace-only values, paths containing control
// characters or null bytes, and paths longer than 4096 bytes. Whether the
// file exists is not checked here; a missing seed becomes a NotFound node.
func ValidateSeedPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "seed path cannot be empty")
	}
	if len(path) > maxSeedPathLen {
		return New(ErrCodeInvalidPath, "seed path too long (max %d bytes)", maxSeedPathLen)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "seed path contains invalid control characters")
		}
	}
	return nil
}
