package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plumekit/plume/config/site"
	"github.com/plumekit/plume/config/validate"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX = "PLUME"

	DefaultPath        = "plume.yaml"
	DefaultHistoryPath = ".plume/history.db"
)

var (
	LogConfigEnv = ENV_PREFIX + "_LOG_CONFIG"
	ConfigEnv    = ENV_PREFIX + "_CONFIG"
)

// Config is one parsed plume.yaml: a base Site Configuration Record
// plus named profile overlays and tool settings. The record itself is
// built on demand via Resolve so every caller gets a fresh copy.
type Config struct {
	History  HistoryConfig             `yaml:"history"`
	Export   ExportConfig              `yaml:"export"`
	Profiles map[string]map[string]any `yaml:"profiles"`

	path    string
	baseRaw map[string]any
	base    *site.Record
}

type HistoryConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// ExportConfig sets the defaults for `plume export`; flags override.
type ExportConfig struct {
	Format string `yaml:"format"`
	Out    string `yaml:"out"`
}

// ExportFormats are the accepted values for export.format.
var ExportFormats = []string{"pelican", "json", "yaml"}

// Path returns the config file this Config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Base returns the base record, already transformed and validated.
func (c *Config) Base() *site.Record {
	return c.base
}

// ProfileNames returns the overlay names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Load(path string) (*Config, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// The record sections are kept as a raw map so profile overlays can
	// merge onto them before the typed unmarshal.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	delete(raw, "profiles")
	delete(raw, "history")
	delete(raw, "export")

	cfg.path = path
	cfg.baseRaw = raw
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = ExportFormats[0]
	}

	var verr validate.ValidationErrors
	validate.RequireOneOf(&verr, "export/format", cfg.Export.Format, ExportFormats)
	if verr.HasErrors() {
		return nil, &verr
	}

	base, err := buildRecord(raw)
	if err != nil {
		return nil, err
	}
	cfg.base = base
	cfg.checkDirs()

	log.Logger.Info().Str("path", path).Int("profiles", len(cfg.Profiles)).Msg("Configuration loaded")
	return &cfg, nil
}

// Resolve merges the named profile onto the base record and runs the
// full transform/validate pipeline on the result. An empty name
// resolves the base record.
func (c *Config) Resolve(name string) (*site.Record, error) {
	if name == "" {
		return buildRecord(c.baseRaw)
	}
	overlay, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", name)
	}
	rec, err := buildRecord(mergeMaps(c.baseRaw, overlay))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return rec, nil
}

// checkDirs looks for the directories the generator will read. Both
// are optional: a missing one only warns, since plume may run before
// the site skeleton exists.
func (c *Config) checkDirs() {
	root := filepath.Dir(c.path)
	var verr validate.ValidationErrors
	validate.CheckDir("site/content", filepath.Join(root, c.base.Site.Content), false, &verr)
	if strings.Contains(c.base.Theme, "/") {
		validate.CheckDir("theme", filepath.Join(root, c.base.Theme), false, &verr)
	}
}

func buildRecord(raw map[string]any) (*site.Record, error) {
	buf, err := yaml.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var rec site.Record
	if err := yaml.Unmarshal(buf, &rec); err != nil {
		return nil, err
	}

	applyEnv(&rec)

	if err := rec.TransformBeforeValidation(); err != nil {
		return nil, err
	}
	var verr validate.ValidationErrors
	rec.Validate(&verr)
	if verr.HasErrors() {
		return nil, &verr
	}
	if err := rec.TransformAfterValidation(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func GetLogConfigPath() string {
	return os.Getenv(LogConfigEnv)
}
