package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/geostation/locmap/pkg/constants"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show version information for the locmap CLI.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("locmap version %s\n", Version)
		fmt.Printf("commit: %s\n", Commit)
		fmt.Printf("built: %s\n", Date)
		fmt.Printf("go version: %s\n", runtime.Version())
		fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("homepage: %s\n", constants.ProjectHomepage)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
