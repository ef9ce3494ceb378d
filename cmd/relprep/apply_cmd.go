package main

import (
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var (
		explicitVersion string
		level           string
		dryRun          bool
		yes             bool
		allowDirty      bool
	)

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   "Apply the pre-release replacements for a version bump",
		GroupID: GroupRelease,
		Args:    cobra.NoArgs,
		Long: `Apply the pre-release search/replace rules for a version bump.

The next version comes from --version, or from bumping the latest release
tag by --level (default: patch). All rules are verified before any file is
written: a rule whose match count violates its "exactly" constraint aborts
the whole run. Writes are atomic.

relprep does not commit the result; review it and let your release
pipeline create the release commit.`,
		Example: `  relprep apply                    # bump patch, rewrite files
  relprep apply --level minor      # bump minor
  relprep apply --version 2.0.0    # explicit version
  relprep apply --dry-run          # print diffs, change nothing
  relprep apply -y                 # skip the confirmation prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), applyOptions{
				explicitVersion: explicitVersion,
				level:           level,
				dryRun:          dryRun,
				yes:             yes,
				allowDirty:      allowDirty,
			})
		},
	}

	cmd.Flags().StringVar(&explicitVersion, "version", "", "Explicit next version (overrides --level)")
	cmd.Flags().StringVar(&level, "level", "patch", "Bump level: major, minor, or patch")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print unified diffs instead of writing files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&allowDirty, "allow-dirty", false, "Allow applying with uncommitted changes present")

	return cmd
}
