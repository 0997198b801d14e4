package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// explicitSetting is a setting whose zero value is meaningful, e.g. a
// MaxInflateSize of 0 disables the cap. mergo.WithOverride never lets a zero
// value replace a non-zero one, so a layer that sets one of these explicitly
// has it copied over after the merge.
type explicitSetting struct {
	flag  string
	env   string
	apply func(dst, src *StructuredConfig)
}

var explicitSettings = []explicitSetting{
	{
		flag:  "max-inflate-size",
		env:   "APP_MAX_INFLATE_SIZE",
		apply: func(dst, src *StructuredConfig) { dst.App.MaxInflateSize = src.App.MaxInflateSize },
	},
	{
		flag:  "retry-count",
		env:   "ADAPTER_RETRY_COUNT",
		apply: func(dst, src *StructuredConfig) { dst.Adapter.RetryCount = src.Adapter.RetryCount },
	},
}

func lookupExplicitSetting(flagName string) (explicitSetting, bool) {
	for _, s := range explicitSettings {
		if s.flag == flagName {
			return s, true
		}
	}
	return explicitSetting{}, false
}

// explicitEnv returns the flag names of the explicit settings present in the
// environment.
func explicitEnv() []string {
	var names []string
	for _, s := range explicitSettings {
		if _, ok := os.LookupEnv(s.env); ok {
			names = append(names, s.flag)
		}
	}
	return names
}

type configBuilder struct {
	configs []*StructuredConfig
	// explicit holds, per layer, the explicit settings it sets
	explicit map[*StructuredConfig][]string
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:  make([]*StructuredConfig, 0, 4),
		explicit: make(map[*StructuredConfig][]string),
	}
}

func (b *configBuilder) add(cfg *StructuredConfig, explicit []string) {
	b.configs = append(b.configs, cfg)
	if len(explicit) > 0 {
		b.explicit[cfg] = explicit
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		for _, name := range b.explicit[cfg] {
			if s, ok := lookupExplicitSetting(name); ok {
				s.apply(config, cfg)
			}
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(envCfg, explicitEnv())
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, explicit, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(flagsCfg, explicit)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, explicit, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.add(jsonCfg, explicit)
	}

	return b
}
