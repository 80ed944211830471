package indicator

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	indicatorpkg "github.com/mohamedkhairy/ta-engine/pkg/indicator"
	"github.com/mohamedkhairy/ta-engine/pkg/logger"
	"github.com/mohamedkhairy/ta-engine/pkg/ta"
)

// ResultCache keeps recent outputs keyed by a digest of the request.
// Computations are deterministic, so a hit is always identical to a fresh run.
// Outputs are copied in and out, so callers may modify what they get.
type ResultCache struct {
	entries *lru.Cache[uint64, indicatorpkg.Output]
}

// NewResultCache creates a cache holding up to size outputs
func NewResultCache(size int) (*ResultCache, error) {
	entries, err := lru.New[uint64, indicatorpkg.Output](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	return &ResultCache{entries: entries}, nil
}

// Get looks up an output
func (c *ResultCache) Get(key uint64) (indicatorpkg.Output, bool) {
	out, ok := c.entries.Get(key)
	if !ok {
		logger.CacheLookups.WithLabelValues("miss").Inc()
		return out, false
	}
	logger.CacheLookups.WithLabelValues("hit").Inc()
	return cloneOutput(out), true
}

// Add stores an output
func (c *ResultCache) Add(key uint64, out indicatorpkg.Output) {
	c.entries.Add(key, cloneOutput(out))
}

// Len returns the number of cached outputs
func (c *ResultCache) Len() int {
	return c.entries.Len()
}

// Purge drops every entry
func (c *ResultCache) Purge() {
	c.entries.Purge()
}

func cloneOutput(out indicatorpkg.Output) indicatorpkg.Output {
	out.Real = slices.Clone(out.Real)
	out.Integer = slices.Clone(out.Integer)
	return out
}

// RequestDigest hashes everything an output depends on: the indicator,
// the range, the resolved options, the inputs it reads and the settings
// version.
func RequestDigest(def *indicatorpkg.Definition, req Request, settingsVersion uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeInt := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	writeFloats := func(values []float64) {
		if values == nil {
			writeInt(math.MaxUint64)
			return
		}
		writeInt(uint64(len(values)))
		for _, v := range values {
			writeInt(math.Float64bits(v))
		}
	}

	_, _ = d.WriteString(def.Name)
	writeInt(uint64(int64(req.StartIdx)))
	writeInt(uint64(int64(req.EndIdx)))

	opts := def.Resolve(req.Options)
	writeInt(uint64(int64(opts.Period)))
	if opts.Penetration != nil {
		writeInt(math.Float64bits(*opts.Penetration))
	}
	if def.UsesSettings {
		writeInt(settingsVersion)
	}

	for _, input := range def.Inputs {
		var values []float64
		if input == ta.FieldReal {
			values = req.Series.Values()
		} else {
			values, _ = req.Series.Field(input)
		}
		writeFloats(values)
	}
	return d.Sum64()
}
