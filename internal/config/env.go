package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const envPrefix = "UNDERLINE_"

// envOverrides uses pointers so unset variables leave the store alone.
type envOverrides struct {
	LogAPIIssues *bool   `env:"LOG_API_ISSUES"`
	APILogFile   *string `env:"API_LOG_FILE"`
}

// layer returns only the keys whose variables are set.
func (o envOverrides) layer() map[string]any {
	layer := make(map[string]any, 2)
	if o.LogAPIIssues != nil {
		layer[KeyLogAPIIssues] = *o.LogAPIIssues
	}
	if o.APILogFile != nil {
		layer[KeyAPILogFile] = *o.APILogFile
	}
	return layer
}

// ApplyEnvOverrides lets UNDERLINE_LOG_API_ISSUES and UNDERLINE_API_LOG_FILE
// override the loaded values. Load never calls it.
func (s *Store) ApplyEnvOverrides() error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return s.applyLayer(o.layer())
}

// applyLayer merges a partial set of keys over the current values. The
// result goes back through Import, so the layer gets the same key and type
// checks as a config file.
func (s *Store) applyLayer(layer map[string]any) error {
	if len(layer) == 0 {
		return nil
	}

	merged := s.Export()
	if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging configs: %w", err)
	}
	return s.Import(merged)
}
