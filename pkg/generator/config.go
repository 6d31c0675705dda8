package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UtilityConfig is one entry of the config file's `utilities` array.
type UtilityConfig struct {
	Key              string          `json:"key"`
	CSS              json.RawMessage `json:"css"`
	Theme            string          `json:"theme,omitempty"`
	Modifier         string          `json:"modifier,omitempty"`
	Type             string          `json:"type,omitempty"`
	Wrapper          string          `json:"wrapper,omitempty"`
	SupportsNegative bool            `json:"supportsNegative,omitempty"`
	SupportsFraction bool            `json:"supportsFraction,omitempty"`
	OrderingKey      string          `json:"orderingKey,omitempty"`
	Group            string          `json:"group,omitempty"`
}

// GlobConfig controls which input files the driver walks.
type GlobConfig struct {
	Base    string   `json:"base,omitempty"`
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// FeaturesConfig toggles ambient behavior.
type FeaturesConfig struct {
	StrictMode bool `json:"strictMode,omitempty"`
}

// Config is the config file shape from spec.md §6, decoded with
// unknown fields rejected the way pkg/tokens/constraints.go's
// ParseJSON/WriteJSON decode config documents.
type Config struct {
	Theme           map[string]map[string]any `json:"theme,omitempty"`
	Utilities       []UtilityConfig            `json:"utilities,omitempty"`
	StaticUtilities map[string]json.RawMessage `json:"staticUtilities,omitempty"`
	Features        FeaturesConfig             `json:"features,omitempty"`
	Glob            GlobConfig                 `json:"glob,omitempty"`
}

// DecodeConfig parses raw config bytes, rejecting unknown top-level and
// nested fields.
func DecodeConfig(raw []byte) (*Config, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("generator: decoding config: %w", err)
	}
	return &cfg, nil
}
