package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikimap/pkg/observability"
)

// logHooks reports crawl and render events as debug logs.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnCrawlStart(_ context.Context, seeds int) {
	h.logger.Debug("crawl started", "seeds", seeds)
}

func (h *logHooks) OnDocument(_ context.Context, ref, outcome string, links int, d time.Duration) {
	h.logger.Debug("document", "ref", ref, "outcome", outcome, "links", links, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnCrawlComplete(_ context.Context, nodes, broken int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("crawl failed", "err", err, "took", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("crawl complete", "nodes", nodes, "broken", broken, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, format string, nodes int) {
	h.logger.Debug("render started", "format", format, "nodes", nodes)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

var (
	_ observability.CrawlHooks  = (*logHooks)(nil)
	_ observability.RenderHooks = (*logHooks)(nil)
)
