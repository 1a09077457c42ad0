// Package config loads the optional .semcorerc file that toggles the two
// policy decisions spec.md left open (§9): switch-discriminant dispatch
// and array-covariance store safety. Both default to the values this
// module decided on; the file only needs to exist for a caller that
// wants the alternative.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gerax5/semcore/internal/semantic/types"
)

// SwitchPolicy selects how the checker validates a switch statement's
// case values against its discriminant.
type SwitchPolicy string

const (
	// SwitchEqualityDispatch allows any case value mutually assignable
	// with the discriminant's type, matching §4.4's `== scrut vi`
	// lowering. This is the default.
	SwitchEqualityDispatch SwitchPolicy = "equality-dispatch"
	// SwitchBooleanOnly requires the discriminant to be Bool and every
	// case value to be of type Bool, treating switch as a more
	// structured if/else chain.
	SwitchBooleanOnly SwitchPolicy = "boolean-only"
)

// Config holds the resolved policy values for one compilation run.
type Config struct {
	SwitchPolicy     SwitchPolicy           `yaml:"switch_policy"`
	ArrayCovariance  types.ArrayCovariance  `yaml:"-"`
	ArrayCovarianceName string              `yaml:"array_covariance"`
}

// Default returns the module's chosen defaults: equality-dispatch switch
// semantics and strict array covariance (§9).
func Default() *Config {
	return &Config{
		SwitchPolicy:        SwitchEqualityDispatch,
		ArrayCovariance:     types.ArrayStrict,
		ArrayCovarianceName: "strict",
	}
}

type rawConfig struct {
	SwitchPolicy    string `yaml:"switch_policy"`
	ArrayCovariance string `yaml:"array_covariance"`
}

// Load reads a YAML config file at path, falling back to Default for any
// field the file omits. A missing file is not an error; it simply
// produces the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if raw.SwitchPolicy != "" {
		cfg.SwitchPolicy = SwitchPolicy(raw.SwitchPolicy)
	}
	switch raw.ArrayCovariance {
	case "":
		// keep default
	case "widening":
		cfg.ArrayCovariance = types.ArrayWidening
		cfg.ArrayCovarianceName = "widening"
	case "strict":
		cfg.ArrayCovariance = types.ArrayStrict
		cfg.ArrayCovarianceName = "strict"
	}

	return cfg, nil
}
