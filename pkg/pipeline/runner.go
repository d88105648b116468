package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/observability"
	"github.com/matzehuels/chartgeom/pkg/render"
)

// Cache key types reported to observability hooks.
const (
	keyTypeGeometry = "geometry"
	keyTypeArtifact = "artifact"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects cache.DefaultKeyer, and a nil logger selects log.Default().
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
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs compute and render for data.
//
// A no-data geometry is a normal result: it is rendered as a placeholder
// unless opts.Strict is set, in which case Execute returns an
// ErrCodeNoData error.
func (r *Runner) Execute(ctx context.Context, data []chart.Datum, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Stats: Stats{Records: len(data)}}

	computeStart := time.Now()
	g, computeHit, err := r.ComputeWithCacheInfo(ctx, data, opts)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Geometry = g
	result.Stats.Elements = g.Len()
	result.Stats.ComputeTime = time.Since(computeStart)
	result.CacheInfo.ComputeHit = computeHit

	if g.Empty() {
		if opts.Strict {
			return nil, errors.New(errors.ErrCodeNoData, "%s chart has nothing to draw: %s", g.Kind, g.NoData())
		}
		r.Logger.Warn("nothing to draw", "kind", g.Kind, "reason", g.NoData(), "records", len(data))
	} else {
		r.Logger.Info("computed geometry",
			"kind", g.Kind,
			"elements", g.Len(),
			"cached", computeHit,
			"duration", result.Stats.ComputeTime)
	}

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	if h, err := geometryHash(g); err == nil {
		result.GeometryHash = h
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeWithCacheInfo derives geometry for data and reports whether it
// came from the cache.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, data []chart.Datum, opts Options) (chart.Geometry, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return chart.Geometry{}, false, err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		// NaN and Inf values are not representable in JSON; skip the cache.
		return r.compute(ctx, data, opts), false, nil
	}
	key := r.Keyer.GeometryKey(cache.Hash(raw), opts.GeometryKeyOpts())

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var g chart.Geometry
			if err := json.Unmarshal(cached, &g); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeGeometry)
				return g, true, nil
			}
		} else if err != nil {
			r.Logger.Debug("geometry cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeGeometry)
	}

	g := r.compute(ctx, data, opts)

	if encoded, err := json.Marshal(g); err == nil {
		if err := r.Cache.Set(ctx, key, encoded, cache.TTLGeometry); err != nil {
			r.Logger.Debug("geometry cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeGeometry, len(encoded))
		}
	}
	return g, false, nil
}

func (r *Runner) compute(ctx context.Context, data []chart.Datum, opts Options) chart.Geometry {
	hooks := observability.Compute()
	hooks.OnComputeStart(ctx, string(opts.Kind), len(data))
	start := time.Now()
	g := chart.Compute(data, opts.Spec())
	hooks.OnComputeComplete(ctx, string(opts.Kind), g.Len(), g.NoData().String(), time.Since(start))
	return g
}

// Compute is ComputeWithCacheInfo without the cache hit info.
func (r *Runner) Compute(ctx context.Context, data []chart.Datum, opts Options) (chart.Geometry, error) {
	g, _, err := r.ComputeWithCacheInfo(ctx, data, opts)
	return g, err
}

// RenderWithCacheInfo produces every format in opts.Formats and reports
// whether all of them came from the cache. Only missing formats are
// rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g chart.Geometry, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	hash, err := geometryHash(g)
	if err != nil {
		return nil, false, fmt.Errorf("hash geometry: %w", err)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if _, dup := artifacts[format]; dup {
			continue
		}
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	start := time.Now()
	ropts := opts.RenderOptions()
	for _, format := range missing {
		data, err := render.Render(g, format, ropts)
		if err != nil {
			observability.Compute().OnRenderComplete(ctx, missing, time.Since(start), err)
			return nil, false, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data

		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Debug("artifact cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}
	observability.Compute().OnRenderComplete(ctx, missing, time.Since(start), nil)
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, g chart.Geometry, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func geometryHash(g chart.Geometry) (string, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
