package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/relprep/internal/git"
	"github.com/raphi011/relprep/internal/log"
	"github.com/raphi011/relprep/internal/output"
	"github.com/raphi011/relprep/internal/replace"
	"github.com/raphi011/relprep/internal/ui/prompt"
)

type applyOptions struct {
	explicitVersion string
	level           string
	dryRun          bool
	yes             bool
	allowDirty      bool
}

func runApply(ctx context.Context, opts applyOptions) error {
	l := log.FromContext(ctx)
	p := output.FromContext(ctx)

	rel, err := resolveRelease(ctx, workDir, opts.explicitVersion, opts.level)
	if err != nil {
		return err
	}

	branch, err := git.CurrentBranch(ctx, rel.Root)
	if err != nil {
		return err
	}
	if !rel.Cfg.BranchAllowed(branch) {
		return fmt.Errorf("branch %q does not match allow-branch %v", branch, rel.Cfg.AllowBranch)
	}

	if !opts.allowDirty && !opts.dryRun && git.IsDirty(ctx, rel.Root) {
		return fmt.Errorf("uncommitted changes present (use --allow-dirty to override)")
	}

	if len(rel.Cfg.PreReleaseReplacements) == 0 {
		l.Println("No pre-release replacements configured")
		return nil
	}

	// Verify every rule before touching anything
	changes, err := replace.Run(rel.Root, rel.Cfg.PreReleaseReplacements, rel.Ctx)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for i := range changes {
			if diff := replace.Diff(&changes[i]); diff != "" {
				p.Print(diff)
			}
		}
		l.Printf("Dry run for %s -> %s, no files written\n", rel.Prev, rel.Next)
		return nil
	}

	if !opts.yes && isatty.IsTerminal(os.Stdin.Fd()) {
		result, err := prompt.Confirm(fmt.Sprintf("Apply %d replacements for version %s?", len(rel.Cfg.PreReleaseReplacements), rel.Next))
		if err != nil {
			return err
		}
		if !result.Confirmed || result.Cancelled {
			l.Println("Aborted")
			return nil
		}
	}

	if err := replace.Apply(changes); err != nil {
		return err
	}

	for i := range changes {
		if changes[i].Modified() {
			l.Printf("✓ %s updated (%d matches)\n", changes[i].File, changes[i].Matches)
		} else {
			l.Printf("→ %s unchanged\n", changes[i].File)
		}
	}
	l.Printf("\nPrepared %s -> %s. Review the changes, then let your release pipeline commit and tag.\n", rel.Prev, rel.Next)
	return nil
}
