package internal

import "time"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config     *Config
	sourcePath string
	outputDir  string
	strategy   string
	now        func() time.Time
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithSource sets the path of the CherryTree database to convert.
func WithSource(path string) Option {
	return func(a *application) {
		a.sourcePath = path
	}
}

// WithOutputDir sets the directory the output repository is created in.
func WithOutputDir(dir string) Option {
	return func(a *application) {
		a.outputDir = dir
	}
}

// WithStrategy selects the conversion strategy.
func WithStrategy(strategy string) Option {
	return func(a *application) {
		a.strategy = strategy
	}
}

// WithClock overrides the time source used for default timestamps and the
// init commit. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}
