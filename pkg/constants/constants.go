// Package constants provides shared constants used throughout the locmap
// codebase: file permissions, default file names, and tool identity strings
// that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output defaults
const (
	// DefaultOutputBasename is the file name (without extension) the merged
	// hierarchy document is written to when no basename is configured.
	DefaultOutputBasename = "country"

	// StagingDirPattern is the os.MkdirTemp pattern for the staging
	// directory used before the transactional copy into the output dir.
	StagingDirPattern = "locmap-*"
)

// Tool identity used in generated-file headers and version output
const (
	// ProjectHomepage points at the project repository.
	ProjectHomepage = "https://github.com/geostation/locmap"
)
