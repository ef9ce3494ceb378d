package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/relprep/internal/output"
)

func newMessagesCmd() *cobra.Command {
	var (
		explicitVersion string
		level           string
	)

	cmd := &cobra.Command{
		Use:     "messages",
		Short:   "Render the commit messages and tag name for a version",
		Aliases: []string{"msg"},
		GroupID: GroupRelease,
		Args:    cobra.NoArgs,
		Long: `Render the pre-/post-release commit message templates and the tag name
for the upcoming version, for use by the release pipeline.`,
		Example: `  relprep messages                 # for the next patch release
  relprep messages --version 2.0.0
  git commit -m "$(relprep messages --format pre)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			rel, err := resolveRelease(ctx, workDir, explicitVersion, level)
			if err != nil {
				return err
			}

			pre, err := rel.Ctx.Expand(rel.Cfg.PreReleaseCommitMessage)
			if err != nil {
				return err
			}
			post, err := rel.Ctx.Expand(rel.Cfg.PostReleaseCommitMessage)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "tag":
				p.Println(rel.Ctx.TagName)
			case "pre":
				p.Println(pre)
			case "post":
				p.Println(post)
			case "":
				p.Printf("tag:  %s\n", rel.Ctx.TagName)
				p.Printf("pre:  %s\n", pre)
				p.Printf("post: %s\n", post)
			default:
				return fmt.Errorf("invalid format %q: must be \"tag\", \"pre\", or \"post\"", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&explicitVersion, "version", "", "Explicit next version (overrides --level)")
	cmd.Flags().StringVar(&level, "level", "patch", "Bump level: major, minor, or patch")
	cmd.Flags().String("format", "", "Print a single value: tag, pre, or post")

	return cmd
}
