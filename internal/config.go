// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Strategies.
const (
	StrategyOneFile = "onefile"
)

var utcOffsetRe = regexp.MustCompile(`^[+-]\d{4}$`)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Document DocumentConfig    `yaml:"document"`
	Catalog  CatalogConfig     `yaml:"catalog"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Document.Validate(); err != nil {
		return err
	}
	return c.Catalog.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// DocumentConfig controls the rendered document and its commit metadata.
type DocumentConfig struct {
	// Name is the single file every snapshot overwrites, e.g. "notes.org".
	Name string `yaml:"name"`
	// UTCOffset is the fixed offset author timestamps are expressed in,
	// in ±hhmm form.
	UTCOffset string `yaml:"utc_offset"`
	// AuthorName and AuthorEmail sign every generated commit.
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Validate validates the document configuration.
func (c *DocumentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.UTCOffset, validation.Required, validation.Match(utcOffsetRe)),
		validation.Field(&c.AuthorName, validation.Required),
		validation.Field(&c.AuthorEmail, validation.Required),
	)
}

// Zone returns the fixed time zone described by UTCOffset.
func (c *DocumentConfig) Zone() (*time.Location, error) {
	if !utcOffsetRe.MatchString(c.UTCOffset) {
		return nil, fmt.Errorf("invalid utc offset %q", c.UTCOffset)
	}
	hours, _ := strconv.Atoi(c.UTCOffset[1:3])
	minutes, _ := strconv.Atoi(c.UTCOffset[3:5])
	seconds := (hours*60 + minutes) * 60
	if c.UTCOffset[0] == '-' {
		seconds = -seconds
	}
	return time.FixedZone(c.UTCOffset, seconds), nil
}

// CatalogConfig holds the optional SQLite commit-catalog configuration.
// An empty path disables the catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	return nil
}

// Enabled returns true when a catalog database should be written.
func (c *CatalogConfig) Enabled() bool {
	return c.Path != ""
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Document: DocumentConfig{
			Name:        "notes.org",
			UTCOffset:   "-0500",
			AuthorName:  "chronotree",
			AuthorEmail: "chronotree@localhost",
		},
		Catalog: CatalogConfig{
			Path: "",
		},
	}
}
