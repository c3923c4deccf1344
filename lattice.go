package lattice

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/latticeui/lattice/internal/config"
	"github.com/latticeui/lattice/internal/logging"
	"github.com/latticeui/lattice/internal/validator"
	"github.com/latticeui/lattice/pkg/domain"
	"github.com/latticeui/lattice/pkg/i18n"
	"github.com/latticeui/lattice/pkg/observability"
	"github.com/latticeui/lattice/pkg/ports"
	"github.com/latticeui/lattice/pkg/registry"
	"github.com/latticeui/lattice/pkg/resolver"
)

// Version is the library version reported by the CLI.
const Version = "0.3.0"

// snapshot bundles the immutable state one load produced. Resolutions
// read a snapshot without locking; Reload swaps in a fresh one
// atomically.
type snapshot struct {
	site     *domain.Site
	registry *registry.Registry
	resolver *resolver.Resolver
	pages    map[string]domain.Page
}

// Engine is the high-level entry point for the Lattice library. It
// loads a site definition, validates it, and resolves pages and blocks
// into render trees.
type Engine struct {
	loader  ports.SiteLoader
	cache   ports.RenderCache
	metrics *observability.Metrics
	logger  *slog.Logger
	snap    atomic.Pointer[snapshot]
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom SiteLoader, bypassing the default file
// loader.
func WithLoader(l ports.SiteLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCache attaches a render cache. Cache failures degrade to plain
// resolution; they are logged, never returned.
func WithCache(cache ports.RenderCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New initializes a new Lattice Engine. By default it reads the site
// definition at sitePath (a file, or a directory containing
// site.yaml). If WithLoader is provided, sitePath can be empty.
func New(sitePath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if eng.loader == nil {
		if sitePath == "" {
			return nil, fmt.Errorf("sitePath is required when no custom loader is provided")
		}
		loader, err := config.NewLoader(sitePath)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
	}

	if err := eng.load(); err != nil {
		return nil, err
	}
	return eng, nil
}

// load pulls a fresh site from the loader, validates it, and publishes
// a new snapshot.
func (e *Engine) load() error {
	site, err := e.loader.Site()
	if err != nil {
		return fmt.Errorf("failed to load site: %w", err)
	}
	if err := validator.ValidateSite(site); err != nil {
		return fmt.Errorf("invalid site definition: %w", err)
	}

	reg, err := registry.New(site.Blocks)
	if err != nil {
		return fmt.Errorf("failed to build block registry: %w", err)
	}

	table := i18n.NewTable(site.Languages.Translations)
	pages := make(map[string]domain.Page, len(site.Pages))
	for _, p := range site.Pages {
		pages[p.Path] = p
	}

	e.snap.Store(&snapshot{
		site:     site,
		registry: reg,
		resolver: resolver.New(reg, table, resolver.WithLogger(e.logger)),
		pages:    pages,
	})

	e.logger.Info("site loaded", "blocks", reg.Len(), "pages", len(pages))
	return nil
}

// Reload re-reads the site definition and swaps it in atomically.
// In-flight resolutions keep the snapshot they started with. The
// render cache is purged so stale trees never outlive the definitions
// they came from.
func (e *Engine) Reload(ctx context.Context) error {
	if err := e.load(); err != nil {
		return err
	}
	if e.cache != nil {
		if err := e.cache.Purge(ctx); err != nil {
			e.logger.Warn("failed to purge render cache after reload", "error", err)
		}
	}
	return nil
}

// ResolvePage resolves every section of the page at path for the given
// locale. Unsupported locales fall back to the default language.
func (e *Engine) ResolvePage(ctx context.Context, path, locale string) (*domain.RenderTree, error) {
	snap := e.snap.Load()
	locale = e.normalizeLocale(snap, locale)

	if e.cache != nil {
		tree, err := e.cache.Get(ctx, path, locale)
		if err == nil {
			e.metrics.ObserveCache(true)
			return tree, nil
		}
		e.metrics.ObserveCache(false)
		if err != domain.ErrCacheMiss {
			e.logger.Warn("render cache read failed", "path", path, "error", err)
		}
	}

	started := time.Now()
	tree, err := e.resolvePage(snap, path, locale)
	e.metrics.ObserveResolution(path, locale, started, err)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(ctx, tree); err != nil {
			e.logger.Warn("render cache write failed", "path", path, "error", err)
		}
	}
	return tree, nil
}

func (e *Engine) resolvePage(snap *snapshot, path, locale string) (*domain.RenderTree, error) {
	page, ok := snap.pages[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPageNotFound, path)
	}

	tree := &domain.RenderTree{
		Path:     page.Path,
		Title:    page.Title,
		Locale:   locale,
		Sections: make([]*domain.RenderNode, 0, len(page.Sections)),
	}
	for i, sec := range page.Sections {
		node, err := snap.resolver.ResolveSection(sec, locale)
		if err != nil {
			return nil, fmt.Errorf("page %s section %d: %w", path, i, err)
		}
		tree.Sections = append(tree.Sections, node)
	}
	return tree, nil
}

// ResolveBlock resolves one named block with the given variable
// context, outside any page.
func (e *Engine) ResolveBlock(ctx context.Context, name string, vars map[string]any, locale string) (*domain.RenderNode, error) {
	snap := e.snap.Load()
	return snap.resolver.ResolveBlock(name, vars, e.normalizeLocale(snap, locale))
}

// Pages returns the loaded pages in definition order.
func (e *Engine) Pages() []domain.Page {
	return e.snap.Load().site.Pages
}

// Blocks returns the registered block names.
func (e *Engine) Blocks() []string {
	return e.snap.Load().registry.Names()
}

// Languages returns the site's locale configuration.
func (e *Engine) Languages() domain.Languages {
	return e.snap.Load().site.Languages
}

// normalizeLocale maps an unsupported or empty locale onto the
// default language. An exact supported match or a regional variant of
// a supported base language passes through unchanged.
func (e *Engine) normalizeLocale(snap *snapshot, locale string) string {
	langs := snap.site.Languages
	if locale == "" {
		return langs.Default
	}
	if len(langs.Supported) == 0 {
		return locale
	}
	if langs.IsSupported(locale) || langs.IsSupported(i18n.BaseLanguage(locale)) {
		return locale
	}
	e.logger.Debug("unsupported locale, using default", "locale", locale, "default", langs.Default)
	return langs.Default
}
