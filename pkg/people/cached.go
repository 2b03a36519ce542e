package people

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikimap/pkg/cache"
)

// keyPrefix namespaces detection results in a shared cache. Bump the
// version when detection semantics change.
const keyPrefix = "people.v1"

// CachedDetector remembers the candidates of an inner detector per text
// and known-name list. Cache failures are logged and fall through to the
// inner detector.
type CachedDetector struct {
	inner  Detector
	cache  cache.Cache
	logger *log.Logger
	name   string
}

// NewCachedDetector wraps inner. name distinguishes detectors sharing one
// cache, for example "prose". A nil logger uses log.Default().
func NewCachedDetector(inner Detector, c cache.Cache, name string, logger *log.Logger) *CachedDetector {
	if logger == nil {
		logger = log.Default()
	}
	return &CachedDetector{inner: inner, cache: c, logger: logger, name: name}
}

// Detect implements [Detector].
func (d *CachedDetector) Detect(ctx context.Context, text string, known []string) ([]Candidate, error) {
	key := cache.Key(keyPrefix, d.name, text, known)

	data, hit, err := d.cache.Get(ctx, key)
	if err != nil {
		d.logger.Debug("people cache read failed", "err", err)
	}
	if hit {
		var out []Candidate
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
	}

	out, err := d.inner.Detect(ctx, text, known)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(out); err == nil {
		if err := d.cache.Set(ctx, key, data, 0); err != nil {
			d.logger.Debug("people cache write failed", "err", err)
		}
	}
	return out, nil
}

var _ Detector = (*CachedDetector)(nil)
