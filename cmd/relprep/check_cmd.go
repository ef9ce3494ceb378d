package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/relprep/internal/log"
	"github.com/raphi011/relprep/internal/output"
	"github.com/raphi011/relprep/internal/preflight"
)

func newCheckCmd() *cobra.Command {
	var (
		explicitVersion string
		level           string
	)

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Verify the release configuration against the working tree",
		GroupID: GroupRelease,
		Args:    cobra.NoArgs,
		Long: `Verify that a release can be prepared.

Checks that release.toml parses and validates, the current branch matches
allow-branch, the working tree is clean, signing is configured when
sign-commit/sign-tag are enabled, the commit message templates render, and
every pre-release replacement matches its target file the expected number
of times for the upcoming version.

Nothing is modified; exit status is non-zero if any check fails.`,
		Example: `  relprep check                   # verify for the next patch release
  relprep check --level minor     # verify for the next minor release
  relprep check --version 2.0.0   # verify for an explicit version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			rel, err := resolveRelease(ctx, workDir, explicitVersion, level)
			if err != nil {
				return err
			}

			l.Printf("Checking release %s -> %s\n\n", rel.Prev, rel.Next)

			results := preflight.Run(ctx, rel.Root, &rel.Cfg, rel.CfgPath, rel.Ctx)
			preflight.Render(p, results)

			if preflight.Failed(results) {
				return fmt.Errorf("release preflight failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&explicitVersion, "version", "", "Explicit next version (overrides --level)")
	cmd.Flags().StringVar(&level, "level", "patch", "Bump level: major, minor, or patch")

	return cmd
}
