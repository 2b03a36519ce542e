// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The CLI registers hooks
// at startup; the crawler and renderer emit events through them.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCrawlHooks(&myCrawlHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Crawl().OnCrawlStart(ctx, len(seeds))
//	// ... crawl ...
//	observability.Crawl().OnCrawlComplete(ctx, g.Len(), g.ErrorCount(), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Document outcomes reported by [CrawlHooks.OnDocument].
const (
	OutcomeLoaded   = "loaded"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
)

// =============================================================================
// Crawl Hooks
// =============================================================================

// CrawlHooks receives events from the graph crawler.
type CrawlHooks interface {
	OnCrawlStart(ctx context.Context, seeds int)
	// OnDocument fires once per visited document with one of the Outcome
	// constants.
	OnDocument(ctx context.Context, ref, outcome string, links int, duration time.Duration)
	OnCrawlComplete(ctx context.Context, nodes, broken int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from output rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, nodes int)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCrawlHooks is a no-op implementation of CrawlHooks.
type NoopCrawlHooks struct{}

func (NoopCrawlHooks) OnCrawlStart(context.Context, int)                                 {}
func (NoopCrawlHooks) OnDocument(context.Context, string, string, int, time.Duration)    {}
func (NoopCrawlHooks) OnCrawlComplete(context.Context, int, int, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	crawlHooks  CrawlHooks  = NoopCrawlHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetCrawlHooks registers custom crawl hooks.
// This should be called once at application startup before any crawl.
func SetCrawlHooks(h CrawlHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		crawlHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Crawl returns the registered crawl hooks.
func Crawl() CrawlHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return crawlHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	crawlHooks = NoopCrawlHooks{}
	renderHooks = NoopRenderHooks{}
}
