// Package config loads the tagfreq configuration file.
//
// The file is YAML and every field is optional:
//
//	format: markdown
//	top: 10
//	categories: [upos, deprel]
//	sort_features: false
//	words_only: true
//	normalize: false
//	color: true
//
// Command line flags override the values of the file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/revelaction/tagfreq/render"
	"github.com/revelaction/tagfreq/tag"
)

const (
	AppName = "tagfreq"

	// LocalFile is looked up in the working directory.
	LocalFile = ".tagfreq.yaml"

	// ConfigFile is looked up in the XDG config directory.
	ConfigFile = "config.yaml"
)

// Config holds the defaults of a run.
type Config struct {
	// Output format, one of render.Formats()
	Format string `yaml:"format"`

	// Number of entries per category, 0 for all
	Top int `yaml:"top"`

	// Categories reported when no category flag is given
	Categories []string `yaml:"categories"`

	SortFeatures bool `yaml:"sort_features"`
	WordsOnly    bool `yaml:"words_only"`
	Normalize    bool `yaml:"normalize"`
	Color        bool `yaml:"color"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		Format: render.FormatText,
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}

	return c, nil
}

// XDGConfigDir returns the tagfreq directory under the XDG config home.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Find searches for the configuration file in the following order:
// 1. .tagfreq.yaml in the current directory
// 2. config.yaml in the XDG config directory
//
// It returns the empty string if there is none.
func Find() string {
	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, LocalFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(XDGConfigDir(), ConfigFile)
	if _, err := os.Stat(p); err == nil {
		return p
	}

	return ""
}

// Resolve loads the file at explicit, which must exist, or the file found
// by Find. Without any file it returns Default().
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	p := Find()
	if p == "" {
		return Default(), nil
	}

	return Load(p)
}

// Validate checks the values of the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(render.Formats(), c.Format) {
		return ErrInvalidFormat
	}

	if c.Top < 0 {
		return ErrInvalidTop
	}

	if _, err := c.TagCategories(); err != nil {
		return errors.Join(ErrInvalidCategory, err)
	}

	return nil
}

// TagCategories parses Categories.
func (c *Config) TagCategories() ([]tag.Category, error) {
	cats := make([]tag.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, err := tag.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(cats, cat) {
			cats = append(cats, cat)
		}
	}
	return cats, nil
}
