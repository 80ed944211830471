// Package candle implements candlestick pattern recognition: the candle
// settings table, per-bar feature extraction, the windowed aggregation that
// turns features into adaptive thresholds, and the patterns built on them.
package candle

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind      = errors.New("unknown candle setting kind")
	ErrUnknownRangeType = errors.New("unknown candle range type")
	ErrInvalidSetting   = errors.New("invalid candle setting")
)

// Kind names a candle feature whose "long", "short", "near"... meaning is
// configurable.
type Kind int

const (
	BodyLong Kind = iota
	BodyVeryLong
	BodyShort
	BodyDoji
	ShadowLong
	ShadowVeryLong
	ShadowShort
	ShadowVeryShort
	Near
	Far
	Equal

	kindCount
)

var kindNames = [kindCount]string{
	BodyLong:        "body_long",
	BodyVeryLong:    "body_very_long",
	BodyShort:       "body_short",
	BodyDoji:        "body_doji",
	ShadowLong:      "shadow_long",
	ShadowVeryLong:  "shadow_very_long",
	ShadowShort:     "shadow_short",
	ShadowVeryShort: "shadow_very_short",
	Near:            "near",
	Far:             "far",
	Equal:           "equal",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind from its snake_case name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every configurable kind in table order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// RangeType selects the price measure a setting averages.
type RangeType int

const (
	RealBody RangeType = iota
	HighLow
	Shadows
)

func (r RangeType) String() string {
	switch r {
	case RealBody:
		return "real_body"
	case HighLow:
		return "high_low"
	case Shadows:
		return "shadows"
	default:
		return fmt.Sprintf("range_type(%d)", int(r))
	}
}

// ParseRangeType resolves a range type from its snake_case name.
func ParseRangeType(name string) (RangeType, error) {
	switch name {
	case "real_body":
		return RealBody, nil
	case "high_low":
		return HighLow, nil
	case "shadows":
		return Shadows, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRangeType, name)
	}
}

func (r RangeType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RangeType) UnmarshalText(text []byte) error {
	parsed, err := ParseRangeType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Setting defines one kind: the trailing window length, the measure being
// averaged and the multiplier applied to the average.
// A zero Period compares each candle against its own range.
type Setting struct {
	Period    int       `json:"period" yaml:"period"`
	RangeType RangeType `json:"range_type" yaml:"range_type"`
	Factor    float64   `json:"factor" yaml:"factor"`
}

// Validate checks that the setting can be used by the aggregation engine.
func (s Setting) Validate() error {
	if s.Period < 0 || s.Period > 100000 {
		return fmt.Errorf("%w: period %d outside [0,100000]", ErrInvalidSetting, s.Period)
	}
	if s.RangeType < RealBody || s.RangeType > Shadows {
		return fmt.Errorf("%w: %v", ErrInvalidSetting, s.RangeType)
	}
	if s.Factor < 0 {
		return fmt.Errorf("%w: negative factor %g", ErrInvalidSetting, s.Factor)
	}
	return nil
}

var defaultSettings = [kindCount]Setting{
	BodyLong:        {Period: 10, RangeType: RealBody, Factor: 1.0},
	BodyVeryLong:    {Period: 10, RangeType: RealBody, Factor: 3.0},
	BodyShort:       {Period: 10, RangeType: RealBody, Factor: 1.0},
	BodyDoji:        {Period: 10, RangeType: HighLow, Factor: 0.1},
	ShadowLong:      {Period: 0, RangeType: RealBody, Factor: 1.0},
	ShadowVeryLong:  {Period: 0, RangeType: RealBody, Factor: 2.0},
	ShadowShort:     {Period: 10, RangeType: Shadows, Factor: 1.0},
	ShadowVeryShort: {Period: 10, RangeType: HighLow, Factor: 0.1},
	Near:            {Period: 5, RangeType: HighLow, Factor: 0.2},
	Far:             {Period: 5, RangeType: HighLow, Factor: 0.6},
	Equal:           {Period: 5, RangeType: HighLow, Factor: 0.05},
}

// DefaultSetting returns the documented default for a kind.
func DefaultSetting(k Kind) (Setting, error) {
	if k < 0 || k >= kindCount {
		return Setting{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return defaultSettings[k], nil
}

// Settings is the candle settings table. It is a plain value: copying it
// (or calling Clone) takes a snapshot that later Set calls do not affect.
// A Settings is not safe for concurrent mutation.
type Settings struct {
	table [kindCount]Setting
}

// DefaultSettings returns a fresh table holding the documented defaults.
func DefaultSettings() *Settings {
	return &Settings{table: defaultSettings}
}

// Get returns the setting for a kind.
func (s *Settings) Get(k Kind) (Setting, error) {
	if k < 0 || k >= kindCount {
		return Setting{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return s.table[k], nil
}

// Set replaces the setting for a kind.
func (s *Settings) Set(k Kind, setting Setting) error {
	if k < 0 || k >= kindCount {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if err := setting.Validate(); err != nil {
		return fmt.Errorf("%s: %w", k, err)
	}
	s.table[k] = setting
	return nil
}

// Reset restores every kind to its default.
func (s *Settings) Reset() {
	s.table = defaultSettings
}

// Clone returns an independent copy of the table.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

// All returns the table keyed by kind name.
func (s *Settings) All() map[string]Setting {
	all := make(map[string]Setting, kindCount)
	for k, setting := range s.table {
		all[kindNames[k]] = setting
	}
	return all
}

func (s *Settings) setting(k Kind) Setting {
	return s.table[k]
}
