/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package config loads the locator's one configuration knob (§6.3) from a
// YAML file and/or environment variables. Every other knob in the
// surrounding PII tool's configuration belongs to collaborators outside this
// module's scope (the detector, the CLI/GUI); this package only concerns
// itself with the locator's own contract.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tomcat2357/piilocator/model"
)

// Config is the locator's configuration surface.
type Config struct {
	// NewlineConvention selects how Query.Parts is split (§6.3). Valid
	// values are "lf", "crlf", "either". Defaults to "lf".
	NewlineConvention model.NewlineConvention `mapstructure:"newline_convention"`
}

// Load reads Config from the YAML file at path (optional — pass "" to read
// only from the environment) and the PII_LOCATOR_NEWLINE_CONVENTION
// environment variable, in the style of ksysoev-omnidex's loadConfig:
// viper.ReadInConfig followed by an env-aware Unmarshal. It validates
// NewlineConvention against the three values §6.3 allows.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("newline_convention", string(model.NewlineLF))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("pii_locator")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.NewlineConvention {
	case model.NewlineLF, model.NewlineCRLF, model.NewlineEither:
		return nil
	default:
		return fmt.Errorf("config: invalid newline_convention %q (want lf, crlf, or either)", c.NewlineConvention)
	}
}
