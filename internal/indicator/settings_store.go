package indicator

import (
	"sync"

	"github.com/mohamedkhairy/ta-engine/pkg/logger"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/candle"
)

// SettingsStore holds the live candle settings table. Every change bumps
// the version; computations run against a Snapshot.
type SettingsStore struct {
	mu       sync.RWMutex
	settings *candle.Settings
	version  uint64
}

// NewSettingsStore creates a store seeded with a copy of initial, or with
// the defaults when initial is nil
func NewSettingsStore(initial *candle.Settings) *SettingsStore {
	if initial == nil {
		initial = candle.DefaultSettings()
	}
	return &SettingsStore{
		settings: initial.Clone(),
		version:  1,
	}
}

// Snapshot returns an independent copy of the table and its version
func (s *SettingsStore) Snapshot() (*candle.Settings, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone(), s.version
}

// Version returns the current version
func (s *SettingsStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// All returns the table keyed by kind name along with its version
func (s *SettingsStore) All() (map[string]candle.Setting, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.All(), s.version
}

// Get returns the setting for one kind
func (s *SettingsStore) Get(kind candle.Kind) (candle.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Get(kind)
}

// Set replaces the setting for one kind and returns the new version
func (s *SettingsStore) Set(kind candle.Kind, setting candle.Setting) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settings.Set(kind, setting); err != nil {
		return s.version, err
	}
	s.version++

	logger.SettingsUpdates.WithLabelValues(kind.String()).Inc()
	logger.Info("Candle setting updated",
		logger.Stringer("kind", kind),
		logger.Int("period", setting.Period),
		logger.Stringer("range_type", setting.RangeType),
		logger.Float64("factor", setting.Factor),
		logger.Uint64("version", s.version),
	)
	return s.version, nil
}

// Reset restores the defaults and returns the new version
func (s *SettingsStore) Reset() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Reset()
	s.version++

	logger.SettingsUpdates.WithLabelValues("all").Inc()
	logger.Info("Candle settings reset to defaults", logger.Uint64("version", s.version))
	return s.version
}
