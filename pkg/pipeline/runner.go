package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scadgen/pkg/buildinfo"
	"github.com/matzehuels/scadgen/pkg/cache"
	"github.com/matzehuels/scadgen/pkg/model"
	"github.com/matzehuels/scadgen/pkg/observability"
	"github.com/matzehuels/scadgen/pkg/scad"
)

// Runner executes the pipeline with caching.
//
// The Runner keeps no per-run state, so multiple goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// Version goes into cache keys so upgrades do not serve stale output.
	Version string
	// TTL overrides the default entry lifetimes when positive.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// cache.DefaultKeyer and a nil logger uses log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Version: buildinfo.Version,
	}
}

// Execute loads the model in data and renders every requested format.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger.With("source", opts.Source)

	result := &Result{
		ModelHash: cache.Hash(data),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheInfo: CacheInfo{Hits: make(map[string]bool, len(opts.Formats))},
	}

	var missing []string
	for _, format := range opts.Formats {
		if cached, ok := r.lookup(ctx, result.ModelHash, format, opts); ok {
			result.Artifacts[format] = cached
			result.CacheInfo.Hits[format] = true
			continue
		}
		result.CacheInfo.Hits[format] = false
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		logger.Debug("all artifacts cached", "formats", opts.Formats)
		return result, nil
	}

	loadStart := time.Now()
	m, err := r.Load(ctx, data, opts.Source)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		return nil, err
	}
	result.Model = m
	for _, n := range m.Objects {
		result.Stats.NodeCount += scad.Count(n)
	}
	logger.Info("loaded model",
		"objects", len(m.Objects),
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.LoadTime)

	renderStart := time.Now()
	for _, format := range missing {
		out, err := r.Render(ctx, m, format, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = out
		r.store(ctx, result.ModelHash, format, out, opts)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	logger.Info("rendered",
		"formats", missing,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load decodes and builds a model, reporting to the pipeline hooks.
func (r *Runner) Load(ctx context.Context, data []byte, source string) (*model.Model, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	m, err := model.Parse(data)

	nodes := 0
	if m != nil {
		for _, n := range m.Objects {
			nodes += scad.Count(n)
		}
	}
	hooks.OnLoadComplete(ctx, source, nodes, time.Since(start), err)
	return m, err
}

// Render produces one format for a loaded model.
func (r *Runner) Render(ctx context.Context, m *model.Model, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	out, err := RenderFormat(ctx, m, format, opts.Detailed)

	hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	return out, err
}

func (r *Runner) key(modelHash, format string, opts Options) string {
	if format == FormatSCAD {
		return r.Keyer.RenderKey(modelHash, cache.RenderKeyOpts{Version: r.Version})
	}
	return r.Keyer.TreeKey(modelHash, cache.TreeKeyOpts{Format: format, Detailed: opts.Detailed, Version: r.Version})
}

func (r *Runner) lookup(ctx context.Context, modelHash, format string, opts Options) ([]byte, bool) {
	if opts.Refresh {
		return nil, false
	}
	hooks := observability.Cache()
	key := r.key(modelHash, format, opts)
	var (
		data []byte
		hit  bool
	)
	err := cache.RetryWithBackoff(ctx, func() (err error) {
		data, hit, err = r.Cache.Get(ctx, key)
		return err
	})
	if err != nil {
		opts.Logger.Warn("cache read failed", "format", format, "err", err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, format)
		return nil, false
	}
	hooks.OnCacheHit(ctx, format)
	return data, true
}

func (r *Runner) store(ctx context.Context, modelHash, format string, data []byte, opts Options) {
	ttl := cache.TTLTree
	if format == FormatSCAD {
		ttl = cache.TTLRender
	}
	if r.TTL > 0 {
		ttl = r.TTL
	}
	key := r.key(modelHash, format, opts)
	err := cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, ttl)
	})
	if err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, format, len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
