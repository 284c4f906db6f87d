// Package config loads epntex's runtime settings from a TOML file.
//
// Every key is optional; a missing file section keeps the defaults from
// [Default]. Static document facts (ignored headings, column labels) are not
// configurable and live in pkg/epntap.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/epntex/pkg/epntap"
	"github.com/matzehuels/epntex/pkg/errors"
	"github.com/matzehuels/epntex/pkg/latex"
)

// Source page defaults.
const (
	DefaultDescriptionsURL = "https://voparis-confluence.obspm.fr/display/VES/EPN-TAP+v2+parameter+description"
	DefaultTableURL        = "https://voparis-confluence.obspm.fr/display/VES/EPN-TAP+V2.0+parameters"
	DefaultCacheTTL        = 24 * time.Hour
)

// Config is the decoded configuration file.
type Config struct {
	Sources Sources `toml:"sources"`
	Cache   Cache   `toml:"cache"`
	Render  Render  `toml:"render"`
}

// Sources names the pages each document is converted from.
type Sources struct {
	Descriptions string `toml:"descriptions"`
	Table        string `toml:"table"`
}

// Cache controls the on-disk page cache.
type Cache struct {
	Enabled bool     `toml:"enabled"`
	TTL     Duration `toml:"ttl"`
	Dir     string   `toml:"dir"` // empty means the user cache directory
}

// Render holds renderer options.
type Render struct {
	TablePolicy string `toml:"table_policy"`
}

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sources: Sources{
			Descriptions: DefaultDescriptionsURL,
			Table:        DefaultTableURL,
		},
		Cache:  Cache{Enabled: true, TTL: Duration{DefaultCacheTTL}},
		Render: Render{TablePolicy: latex.TableStrict.String()},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := errors.ValidateInputPath(path); err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "unknown config key %q", undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks URLs, the TTL and the table policy.
func (c Config) Validate() error {
	if err := errors.ValidateURL(c.Sources.Descriptions); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "sources.descriptions")
	}
	if err := errors.ValidateURL(c.Sources.Table); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "sources.table")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if _, err := latex.ParseTablePolicy(c.Render.TablePolicy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "render.table_policy")
	}
	return nil
}

// TablePolicy returns the parsed render.table_policy.
func (c Config) TablePolicy() latex.TablePolicy {
	p, _ := latex.ParseTablePolicy(c.Render.TablePolicy)
	return p
}

// URL returns the source page of the named document.
func (s Sources) URL(document string) (string, bool) {
	switch document {
	case epntap.ColumnDescription:
		return s.Descriptions, true
	case epntap.ColumnTable:
		return s.Table, true
	}
	return "", false
}
