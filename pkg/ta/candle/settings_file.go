package candle

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// settingOverride is one entry of a settings file. Missing fields keep the
// default value of the kind.
type settingOverride struct {
	Period    *int     `yaml:"period"`
	RangeType string   `yaml:"range_type"`
	Factor    *float64 `yaml:"factor"`
}

// LoadSettings reads YAML overrides keyed by kind name on top of the
// defaults:
//
//	near:
//	  period: 10
//	  factor: 0.25
//	body_doji:
//	  range_type: real_body
func LoadSettings(r io.Reader) (*Settings, error) {
	overrides := make(map[string]settingOverride)
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode candle settings: %w", err)
	}

	settings := DefaultSettings()
	for name, o := range overrides {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}

		setting := settings.setting(kind)
		if o.Period != nil {
			setting.Period = *o.Period
		}
		if o.RangeType != "" {
			rt, err := ParseRangeType(o.RangeType)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			setting.RangeType = rt
		}
		if o.Factor != nil {
			setting.Factor = *o.Factor
		}

		if err := settings.Set(kind, setting); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// LoadSettingsFile reads overrides from a YAML file.
func LoadSettingsFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candle settings file: %w", err)
	}
	defer f.Close()

	return LoadSettings(f)
}
