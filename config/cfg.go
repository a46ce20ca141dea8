package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ProjectConfig struct {
		Include       []string `yaml:"include" validate:"min=1,dive,required"`
		Exclude       []string `yaml:"exclude" validate:"dive,required"`
		FollowImports bool     `yaml:"follow_imports"`
	}

	FontsConfig struct {
		Illegal []string `yaml:"illegal" validate:"dive,required"`
		Min     int      `yaml:"min" validate:"gte=0"`
		Max     int      `yaml:"max" validate:"gtefield=Min"`
	}

	RequiredConfig struct {
		// Mandated structural elements, "A or B" names an alternative group.
		Elements []string `yaml:"elements" validate:"dive,required"`
		// Element (or alternative group) -> properties it must have applied.
		Properties map[string][]string `yaml:"properties" validate:"dive,keys,required,endkeys,min=1,dive,required"`
	}

	AppliesCSSConfig struct {
		FailPeriod bool `yaml:"fail_period"`
	}

	InlineStyleConfig struct {
		Attribute string `yaml:"attribute" validate:"required"`
	}

	BreakpointsConfig struct {
		Marker string `yaml:"marker" validate:"required"`
	}

	ContrastConfig struct {
		Minimum float64 `yaml:"minimum" validate:"gte=1,lte=21"`
	}

	RulesConfig struct {
		Fonts       FontsConfig       `yaml:"fonts"`
		Required    RequiredConfig    `yaml:"required"`
		AppliesCSS  AppliesCSSConfig  `yaml:"applies_css"`
		InlineStyle InlineStyleConfig `yaml:"inline_style"`
		Breakpoints BreakpointsConfig `yaml:"breakpoints"`
		Contrast    ContrastConfig    `yaml:"contrast"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Project   ProjectConfig  `yaml:"project"`
		Rules     RulesConfig    `yaml:"rules"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// RequiredKeys returns configured required-properties keys in stable order.
func (rc *RequiredConfig) RequiredKeys() []string {
	keys := make([]string, 0, len(rc.Properties))
	for k := range rc.Properties {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
