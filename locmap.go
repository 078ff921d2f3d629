// Package locmap reconciles tabular UN/LOCODE gazetteer data against a
// hierarchical YAML document of the same locations. It ingests raw records
// into a normalized dataset, merges the dataset into the previously produced
// hierarchy, and writes the updated document back transactionally, reporting
// every addition, move, deletion and conflict along the way.
package locmap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/geostation/locmap/internal/transact"
	"github.com/geostation/locmap/pkg/constants"
	"github.com/geostation/locmap/pkg/errors"
	"github.com/geostation/locmap/pkg/gazetteer"
	"github.com/geostation/locmap/pkg/ingest"
	"github.com/geostation/locmap/pkg/logging"
	"github.com/geostation/locmap/pkg/reconcile"
)

// Updater runs the full ingest + reconcile + save pipeline for one
// invocation. The whole sequence is treated as atomic: any error discards
// all results, and output only replaces the previous documents after the
// staging copy succeeds.
type Updater struct {
	config *config
}

// Result bundles what one update run produced.
type Result struct {
	// Document is the merged hierarchy (also written out unless dry-run).
	Document *gazetteer.Document

	// Stat is the change report of the reconciliation.
	Stat *reconcile.Stat

	// Diagnostics are the informational findings of ingestion.
	Diagnostics *ingest.Diagnostics
}

// New creates an Updater with the given options.
func New(opts ...Option) (*Updater, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if len(c.inputs) == 0 {
		return nil, errors.NewConfigError("updater", "no input files configured", nil)
	}
	if c.basename == "" {
		c.basename = constants.DefaultOutputBasename
	}
	return &Updater{config: c}, nil
}

// Run executes the pipeline and returns the change report. The hierarchy is
// loaded from and saved to the configured output directory.
func (u *Updater) Run(ctx context.Context) (*Result, error) {
	c := u.config

	existing, err := discoverDocuments(c.outputDir)
	if err != nil {
		return nil, err
	}
	doc, err := gazetteer.Load(existing, c.countries)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := ingest.NewIngestor(ingest.Options{
		Countries:  c.countries,
		Simplify:   c.simplify,
		UseAltName: c.useAltNames,
	})
	for _, path := range c.inputs {
		if err := in.ReadFile(path); err != nil {
			return nil, err
		}
	}

	stat := reconcile.Reconcile(doc, in.Dataset(), c.removeObsolete)
	stat.Sort()

	result := &Result{
		Document:    doc,
		Stat:        stat,
		Diagnostics: in.Diagnostics(),
	}
	if c.dryRun {
		logging.Info().Msg("Dry run, skipping output")
		return result, nil
	}
	if err := u.save(doc); err != nil {
		return nil, err
	}
	return result, nil
}

// save stages the document in a temporary directory and copies it over the
// output directory only after every destination file checks out writable.
func (u *Updater) save(doc *gazetteer.Document) error {
	staging, err := os.MkdirTemp("", constants.StagingDirPattern)
	if err != nil {
		return errors.WrapIO("create", "staging directory", err)
	}
	defer os.RemoveAll(staging) //nolint:errcheck // best-effort cleanup

	header := []string{
		fmt.Sprintf("Automatically generated by locmap %s. Do not edit field order by hand.", u.config.version),
		constants.ProjectHomepage,
	}
	if err := doc.Save(staging, u.config.basename, header...); err != nil {
		return err
	}
	return transact.Copy(staging, u.config.outputDir)
}

// discoverDocuments lists the hierarchy documents already present in dir.
// A missing directory simply means a fresh start.
func discoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
