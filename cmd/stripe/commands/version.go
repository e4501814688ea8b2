package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

// VersionInfo describes the build of the CLI.
type VersionInfo struct {
	Version        string `json:"version"         yaml:"version"`
	Commit         string `json:"commit"          yaml:"commit"`
	Date           string `json:"date"            yaml:"date"`
	LibraryVersion string `json:"library_version" yaml:"library_version"`
	GoVersion      string `json:"go_version"      yaml:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the CLI build and the client library version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := VersionInfo{
				Version:        version,
				Commit:         commit,
				Date:           date,
				LibraryVersion: constants.LibraryVersion,
				GoVersion:      runtime.Version(),
			}

			return render(cmd.OutOrStdout(), info,
				[]string{"Version", "Commit", "Date", "Library", "Go"},
				[][]string{{info.Version, info.Commit, info.Date, info.LibraryVersion, info.GoVersion}})
		},
	}
}
