package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/relprep/internal/git"
	"github.com/raphi011/relprep/internal/log"
	"github.com/raphi011/relprep/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Working directory resolved once in Execute
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupRelease = "release"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "relprep",
	Short: "Release preparation driven by release.toml",
	Long: `relprep prepares version bumps from a declarative release.toml.

It validates the release configuration, verifies it against the working
tree (allowed branch, clean state, signing setup, replacement match
counts), and applies the pre-release search/replace rules for a version
bump. It never commits, tags, or pushes; those remain the job of your
release pipeline.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed at this point, so the logger picks up -v/-q
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "relprep: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data), downsampling colors
	// to what the terminal supports (handles piped output and NO_COLOR)
	stdout := colorprofile.NewWriter(os.Stdout, os.Environ())
	ctx = output.WithPrinter(ctx, stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'relprep -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Release commands
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newMessagesCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
}
