package indicator

import (
	"context"
	"errors"
	"fmt"
	"time"

	indicatorpkg "github.com/mohamedkhairy/ta-engine/pkg/indicator"
	"github.com/mohamedkhairy/ta-engine/pkg/logger"
	"github.com/mohamedkhairy/ta-engine/pkg/ta"
)

var (
	// ErrDisabled is returned for registered indicators the engine does not expose
	ErrDisabled = errors.New("indicator disabled")
	// ErrTooManyBars is returned when a series exceeds the configured limit
	ErrTooManyBars = errors.New("series exceeds bar limit")
)

// Request is one computation request
type Request struct {
	Indicator string               `json:"-"`
	Series    ta.Series            `json:"series"`
	StartIdx  int                  `json:"start_idx"`
	EndIdx    int                  `json:"end_idx"`
	Options   indicatorpkg.Options `json:"options"`
}

// Result is the output of one computation along with what produced it
type Result struct {
	Indicator string `json:"indicator"`
	indicatorpkg.Output
	Lookback        int    `json:"lookback"`
	SettingsVersion uint64 `json:"settings_version,omitempty"`
	Cached          bool   `json:"cached"`
}

// EngineConfig holds configuration for the indicator engine
type EngineConfig struct {
	CacheSize  int      // Result cache entries (0 disables caching)
	MaxBars    int      // Longest accepted series
	Indicators []string // Exposed indicators (empty = all registered)
}

// DefaultEngineConfig returns default configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		CacheSize: 1024,
		MaxBars:   100000,
	}
}

// Engine runs indicator computations against a snapshot of the candle
// settings, caching deterministic results
type Engine struct {
	registry *indicatorpkg.Registry
	settings *SettingsStore
	cache    *ResultCache
	enabled  map[string]bool // empty = all
	maxBars  int
}

// NewEngine creates a new indicator engine
func NewEngine(config EngineConfig, registry *indicatorpkg.Registry, settings *SettingsStore) (*Engine, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	if settings == nil {
		settings = NewSettingsStore(nil)
	}

	e := &Engine{
		registry: registry,
		settings: settings,
		enabled:  make(map[string]bool, len(config.Indicators)),
		maxBars:  config.MaxBars,
	}

	for _, name := range config.Indicators {
		if _, err := registry.Get(name); err != nil {
			return nil, err
		}
		e.enabled[name] = true
	}

	if config.CacheSize > 0 {
		cache, err := NewResultCache(config.CacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}

	return e, nil
}

// Settings returns the live candle settings store
func (e *Engine) Settings() *SettingsStore {
	return e.settings
}

// Definition returns an exposed indicator definition
func (e *Engine) Definition(name string) (*indicatorpkg.Definition, error) {
	def, err := e.registry.Get(name)
	if err != nil {
		return nil, err
	}
	if len(e.enabled) > 0 && !e.enabled[name] {
		return nil, fmt.Errorf("%w: %q", ErrDisabled, name)
	}
	return def, nil
}

// Indicators returns the exposed definitions sorted by name
func (e *Engine) Indicators() []*indicatorpkg.Definition {
	all := e.registry.List()
	if len(e.enabled) == 0 {
		return all
	}

	defs := make([]*indicatorpkg.Definition, 0, len(e.enabled))
	for _, def := range all {
		if e.enabled[def.Name] {
			defs = append(defs, def)
		}
	}
	return defs
}

// Lookback answers the lookback query for an indicator under the current
// candle settings
func (e *Engine) Lookback(name string, opts indicatorpkg.Options) (int, error) {
	def, err := e.Definition(name)
	if err != nil {
		return -1, err
	}
	settings, _ := e.settings.Snapshot()
	return def.Lookback(settings, opts), nil
}

// Compute runs one request. A non-success status is reported in the
// result, not as an error; errors cover unknown indicators and rejected
// requests. The output slices belong to the caller.
func (e *Engine) Compute(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	def, err := e.Definition(req.Indicator)
	if err != nil {
		return nil, err
	}
	if n := req.Series.Len(); e.maxBars > 0 && n > e.maxBars {
		return nil, fmt.Errorf("%w: %d bars, limit %d", ErrTooManyBars, n, e.maxBars)
	}

	settings, version := e.settings.Snapshot()
	result := &Result{
		Indicator: def.Name,
		Lookback:  def.Lookback(settings, req.Options),
	}
	if def.UsesSettings {
		result.SettingsVersion = version
	}

	log := logger.WithContext(ctx)

	var key uint64
	if e.cache != nil {
		key = RequestDigest(def, req, version)
		if out, ok := e.cache.Get(key); ok {
			result.Output = out
			result.Cached = true
			log.Debug("Indicator served from cache",
				logger.String("indicator", def.Name),
				logger.Int("start_idx", req.StartIdx),
				logger.Int("end_idx", req.EndIdx),
			)
			return result, nil
		}
	}

	start := time.Now()
	var out indicatorpkg.Output
	if ta.CheckRange(req.StartIdx, req.EndIdx) == ta.Success && req.EndIdx >= req.Series.Len() {
		// The range reaches past every input
		out = indicatorpkg.Output{Status: ta.BadParam}
	} else {
		out = def.Compute(settings, req.Series, req.StartIdx, req.EndIdx, req.Options)
	}
	duration := time.Since(start)

	logger.ComputationsTotal.WithLabelValues(def.Name, out.Status.String()).Inc()
	logger.ComputeDuration.WithLabelValues(def.Name).Observe(duration.Seconds())
	logger.BarsScanned.WithLabelValues(def.Name).Add(float64(out.ElementCount))

	if out.Status != ta.Success {
		log.Warn("Indicator computation rejected",
			logger.String("indicator", def.Name),
			logger.Stringer("status", out.Status),
			logger.Int("start_idx", req.StartIdx),
			logger.Int("end_idx", req.EndIdx),
		)
	} else {
		log.Debug("Indicator computed",
			logger.String("indicator", def.Name),
			logger.Int("begin_index", out.BeginIndex),
			logger.Int("element_count", out.ElementCount),
			logger.Duration("duration", duration),
		)
		if e.cache != nil {
			e.cache.Add(key, out)
		}
	}

	result.Output = out
	return result, nil
}

// CacheLen returns the number of cached results
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}
