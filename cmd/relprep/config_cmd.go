package main

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/relprep/internal/config"
	"github.com/raphi011/relprep/internal/git"
	"github.com/raphi011/relprep/internal/log"
	"github.com/raphi011/relprep/internal/output"
	"github.com/raphi011/relprep/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage the release configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage the release configuration.

The configuration lives in release.toml (or .release.toml) at the
repository root.`,
		Example: `  relprep config init    # Create a default release.toml
  relprep config show    # Show the resolved configuration`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force     bool
		stdout    bool
		tagPrefix string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default release.toml",
		Args:  cobra.NoArgs,
		Long: `Create a commented default release.toml at the repository root.

On a terminal, prompts for the tag prefix unless --tag-prefix is given.`,
		Example: `  relprep config init             # Create release.toml
  relprep config init -f          # Overwrite existing config
  relprep config init -s          # Print config to stdout
  relprep config init --tag-prefix ""   # Unprefixed release tags`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			root, err := git.TopLevel(ctx, workDir)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("tag-prefix") && !stdout && isatty.IsTerminal(os.Stdin.Fd()) {
				result, err := prompt.TextInput("Tag prefix for release tags (enter for \"v\"):", config.DefaultTagPrefix)
				if err != nil {
					return err
				}
				if result.Cancelled {
					l.Println("Aborted")
					return nil
				}
				if result.Value != "" {
					tagPrefix = result.Value
				}
			}

			if stdout {
				output.FromContext(ctx).Print(config.DefaultFileContent(tagPrefix))
				return nil
			}

			path, err := config.Init(root, tagPrefix, force)
			if err != nil {
				return err
			}
			l.Printf("✓ Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().StringVar(&tagPrefix, "tag-prefix", config.DefaultTagPrefix, "Prefix for release tags")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		Long: `Show the resolved configuration as JSON, after defaults were applied.

Useful for debugging which config file is picked up and what the release
pipeline will see.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			root, err := git.TopLevel(ctx, workDir)
			if err != nil {
				return err
			}

			cfg, path, err := config.Load(root)
			if err != nil {
				return err
			}

			if path == "" {
				l.Println("No release.toml found, showing defaults")
			} else {
				l.Printf("Config: %s\n", path)
			}

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			p.Println(string(data))
			return nil
		},
	}

	return cmd
}
