package locmap

import "strings"

// Option is a function that configures an Updater
type Option func(*config) error

// config holds the resolved settings of one update run.
type config struct {
	inputs         []string
	outputDir      string
	basename       string
	countries      map[string]bool
	simplify       bool
	useAltNames    bool
	removeObsolete bool
	dryRun         bool
	version        string
}

// defaultConfig returns the settings used when no options override them.
func defaultConfig() *config {
	return &config{
		outputDir: ".",
		basename:  "",
		simplify:  true,
		version:   "dev",
	}
}

// WithInputs configures the tabular source files to ingest.
func WithInputs(paths ...string) Option {
	return func(c *config) error {
		c.inputs = append(c.inputs, paths...)
		return nil
	}
}

// WithOutputDir configures the directory holding the hierarchy documents.
// Existing documents are loaded from it before merging and the result is
// written back into it.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		c.outputDir = dir
		return nil
	}
}

// WithBasename configures the output file name (without extension).
func WithBasename(basename string) Option {
	return func(c *config) error {
		c.basename = basename
		return nil
	}
}

// WithCountries limits processing to the given country codes. Codes are
// upper-cased; an empty list means all countries.
func WithCountries(codes ...string) Option {
	return func(c *config) error {
		if c.countries == nil {
			c.countries = map[string]bool{}
		}
		for _, code := range codes {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code != "" {
				c.countries[code] = true
			}
		}
		return nil
	}
}

// WithSimplify configures whether ingested names run through the simplifier.
func WithSimplify(enabled bool) Option {
	return func(c *config) error {
		c.simplify = enabled
		return nil
	}
}

// WithDiacritics configures whether the diacritic-bearing name field is used
// instead of the diacritic-free one.
func WithDiacritics(enabled bool) Option {
	return func(c *config) error {
		c.useAltNames = !enabled
		return nil
	}
}

// WithRemoveObsolete configures whether cities absent from the dataset are
// deleted from the hierarchy (preserve-flagged entries are always kept).
func WithRemoveObsolete(enabled bool) Option {
	return func(c *config) error {
		c.removeObsolete = enabled
		return nil
	}
}

// WithDryRun configures whether the merged document is written back.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}

// WithVersion configures the tool version stamped into generated headers.
func WithVersion(version string) Option {
	return func(c *config) error {
		c.version = version
		return nil
	}
}
