package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/funnelchart/pkg/cache"
	"github.com/matzehuels/funnelchart/pkg/observability"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so that cache keys stay compatible.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute resolves the chart settings and returns an artifact per requested
// format, serving each from the cache when possible.
//
// Configuration errors are returned before any cache access or drawing. Cache
// failures are logged and otherwise ignored.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(opts.Settings)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Config:    cfg,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	result.Stats.Sections = cfg.Count()

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats, cfg.Count())
	start := time.Now()

	err = r.execute(ctx, cfg, opts, result)

	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	for _, data := range result.Artifacts {
		result.Stats.Bytes += len(data)
	}

	opts.Logger.Debug("rendered chart",
		"sections", result.Stats.Sections,
		"hits", len(result.CacheInfo.Hits),
		"misses", len(result.CacheInfo.Misses),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) execute(ctx context.Context, cfg config.Config, opts Options, result *Result) error {
	hash, err := cache.HashJSON(cfg)
	if err != nil {
		// Non-finite values have no JSON encoding; render uncached.
		opts.Logger.Debug("configuration not cacheable", "error", err)
		artifacts, err := RenderConfig(cfg, opts, opts.Formats)
		if err != nil {
			return err
		}
		result.Artifacts = artifacts
		result.CacheInfo.Misses = append(result.CacheInfo.Misses, opts.Formats...)
		return nil
	}
	result.ConfigHash = hash

	cacheHooks := observability.Cache()
	var missing []string

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "error", err)
			}
			if err == nil && hit {
				cacheHooks.OnCacheHit(ctx, format)
				result.Artifacts[format] = data
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
				continue
			}
		}
		cacheHooks.OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return nil
	}

	rendered, err := RenderConfig(cfg, opts, missing)
	if err != nil {
		return err
	}

	for _, format := range missing {
		data := rendered[format]
		result.Artifacts[format] = data
		result.CacheInfo.Misses = append(result.CacheInfo.Misses, format)

		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}

	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
