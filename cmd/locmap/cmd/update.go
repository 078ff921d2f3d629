package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geostation/locmap"
	"github.com/geostation/locmap/pkg/logging"
)

var (
	outputDir      string
	outputBasename string
	countries      []string
	noSimplify     bool
	diacritics     bool
	removeObsolete bool
	dryRun         bool
)

// updateCmd merges tabular gazetteer files into the hierarchy documents.
var updateCmd = &cobra.Command{
	Use:   "update [flags] FILE...",
	Short: "Merge tabular gazetteer files into the hierarchy document",
	Long: `Update loads the hierarchy documents found in the output directory,
ingests the given tabular UN/LOCODE files, merges the result into the
hierarchy, and writes the updated document back. Output replacement is
transactional: nothing is overwritten until the whole document has been
staged successfully.

Entries flagged "preserve" are never moved out of the placeholder region
and never removed as obsolete.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVarP(&outputDir, "dir", "d", ".", "directory holding the hierarchy documents")
	updateCmd.Flags().StringVar(&outputBasename, "output-basename", "", "output file name without extension (default \"country\")")
	updateCmd.Flags().StringSliceVarP(&countries, "countries", "c", nil, "restrict processing to these country codes")
	updateCmd.Flags().BoolVar(&noSimplify, "no-simplify", false, "keep raw location names instead of simplifying them")
	updateCmd.Flags().BoolVar(&diacritics, "diacritics", false, "use the diacritic-bearing name field")
	updateCmd.Flags().BoolVar(&removeObsolete, "remove-obsolete", false, "delete cities absent from the dataset (preserve-flagged entries are kept)")
	updateCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing output")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	opts := []locmap.Option{
		locmap.WithInputs(args...),
		locmap.WithOutputDir(outputDir),
		locmap.WithSimplify(!noSimplify),
		locmap.WithDiacritics(diacritics),
		locmap.WithRemoveObsolete(removeObsolete),
		locmap.WithDryRun(dryRun),
		locmap.WithVersion(Version),
	}
	if outputBasename != "" {
		opts = append(opts, locmap.WithBasename(outputBasename))
	}
	if len(countries) > 0 {
		opts = append(opts, locmap.WithCountries(countries...))
	}

	updater, err := locmap.New(opts...)
	if err != nil {
		return err
	}
	result, err := updater.Run(cmd.Context())
	if err != nil {
		return err
	}

	result.Stat.Print()
	printDiagnostics(result)
	return nil
}

// printDiagnostics summarizes the informational ingestion findings. They
// never affect the exit status.
func printDiagnostics(result *locmap.Result) {
	diags := result.Diagnostics
	if !diags.HasFindings() {
		return
	}
	fmt.Println()
	if len(diags.Duplicates) > 0 {
		fmt.Printf("Duplicate names (%d):\n", len(diags.Duplicates))
		for _, d := range diags.Duplicates {
			fmt.Printf("  • %s: kept %q, discarded %q\n", d.Code, d.Kept, d.Discarded)
		}
	}
	if len(diags.Orphans) > 0 {
		fmt.Printf("Cities without a region (%d):\n", len(diags.Orphans))
		for _, code := range diags.Orphans {
			fmt.Printf("  • %s\n", code)
		}
	}
	if len(diags.RenameCandidates) > 0 {
		fmt.Printf("Candidates for manual rename (%d):\n", len(diags.RenameCandidates))
		for _, r := range diags.RenameCandidates {
			fmt.Printf("  • %s: %q (was %q)\n", r.Code, r.Name, r.Original)
		}
	}
	logging.Debug().Int("skipped", len(diags.Skipped)).Msg("Records skipped during ingestion")
}
