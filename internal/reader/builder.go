// Package reader assembles everything an external renderer needs to
// display one source document with one localized quote: the selected
// text variant, the match, its trust badge, the guarded highlight,
// and the quote's integrity grade.
package reader

import (
	"time"

	"github.com/loupe-labs/loupe/internal/cache"
	"github.com/loupe-labs/loupe/internal/highlight"
	"github.com/loupe-labs/loupe/internal/locate"
	"github.com/loupe-labs/loupe/internal/model"
	"github.com/loupe-labs/loupe/internal/normalize"
)

// Quote is the fragment to localize plus the offsets the upstream
// extractor captured against the raw text variant, when it has them.
type Quote struct {
	Text   string
	Stored *model.Offsets
}

// ViewOptions controls variant selection and normalization.
type ViewOptions struct {
	Mode model.ViewMode
	Raw  bool // display the selected variant as stored, no normalization
}

// View is the complete package handed to a renderer. Format names the
// variant that served the view; normalized output is always
// markdown-shaped regardless of the variant it came from.
type View struct {
	Text      string                 `json:"text"`
	Format    model.ContentFormat    `json:"format"`
	Match     model.MatchResult      `json:"match"`
	Quality   model.MatchQuality     `json:"quality"`
	Highlight model.HighlightOutcome `json:"highlight"`
	Integrity model.IntegrityStatus  `json:"integrity"`
}

// Builder wires normalization, localization, and highlighting behind
// one call.
type Builder struct {
	normalizer *normalize.Normalizer
	locator    *locate.Locator
	injector   *highlight.Injector
	store      cache.Cache
	cacheTTL   time.Duration
}

// NewBuilder creates a builder with the given configuration. The
// normalized-output cache is optional; the core components never see
// it.
func NewBuilder(cfg *model.Config) *Builder {
	b := &Builder{
		normalizer: normalize.New(cfg.Normalize),
		locator:    locate.New(cfg.Locate),
		injector:   highlight.New(cfg.Highlight),
		cacheTTL:   cfg.Cache.TTL,
	}
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			b.store = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			b.store = cache.NewMemoryCache(cfg.Cache.TTL)
		}
	}
	return b
}

// BuildView selects a display variant, optionally normalizes it,
// localizes the quote against the displayed text, and injects the
// guarded highlight.
func (b *Builder) BuildView(src model.SourceContent, q Quote, opts ViewOptions) View {
	text, format := selectVariant(src, opts.Mode)

	displayed := text
	if !opts.Raw && opts.Mode != model.ModeText && text != "" {
		displayed = b.Normalize(format, text)
	}

	// Stored offsets reference raw bytes: they only hold when the
	// displayed text is exactly the raw variant.
	stored := q.Stored
	if displayed != src.TextRaw {
		stored = nil
	}

	m := b.locator.Locate(displayed, q.Text, stored)
	return View{
		Text:      displayed,
		Format:    format,
		Match:     m,
		Quality:   highlight.Classify(m.Type),
		Highlight: b.injector.Inject(displayed, m),
		Integrity: b.locator.VerifyIntegrity(displayed, q.Text),
	}
}

// Normalize runs the pipeline through the cache when one is
// configured. Cache keys cover both the variant and the input text,
// so distinct variants of one source never collide.
func (b *Builder) Normalize(format model.ContentFormat, text string) string {
	if text == "" {
		return ""
	}
	if b.store == nil {
		return b.normalizer.Normalize(text)
	}

	key := cache.Key(format, text)
	if cached, found := b.store.Get(key); found {
		return cached
	}
	out := b.normalizer.Normalize(text)
	b.store.Set(key, out, b.cacheTTL)
	return out
}

// Locator exposes the builder's locator for callers that need the
// cascade without a full view.
func (b *Builder) Locator() *locate.Locator {
	return b.locator
}

// selectVariant picks the stored variant to display. Auto prefers the
// reader-formatted rendering of raw text, then markdown, then the
// visible text of cleaned HTML; explicit modes force a variant and
// fall back to raw text.
func selectVariant(src model.SourceContent, mode model.ViewMode) (string, model.ContentFormat) {
	switch mode {
	case model.ModeText:
		return src.TextRaw, model.FormatText
	case model.ModeMarkdown:
		if src.Markdown != "" {
			return src.Markdown, model.FormatMarkdown
		}
		return src.TextRaw, model.FormatText
	case model.ModeHTML:
		if src.HTMLClean != "" {
			return VisibleText(src.HTMLClean), model.FormatHTML
		}
		return src.TextRaw, model.FormatText
	}

	switch {
	case src.TextRaw != "":
		return src.TextRaw, model.FormatText
	case src.Markdown != "":
		return src.Markdown, model.FormatMarkdown
	case src.HTMLClean != "":
		return VisibleText(src.HTMLClean), model.FormatHTML
	}
	return "", model.FormatText
}
