package preflight

import (
	"context"
	"fmt"

	"github.com/raphi011/relprep/internal/config"
	"github.com/raphi011/relprep/internal/git"
	"github.com/raphi011/relprep/internal/replace"
)

// Run performs all preflight checks for the repository at root.
// rc carries the upcoming version so replacement rules and message
// templates are verified with the values a real apply would use.
func Run(ctx context.Context, root string, cfg *config.Config, cfgPath string, rc replace.Context) []Result {
	results := []Result{
		checkConfig(cfgPath),
	}

	branch, err := git.CurrentBranch(ctx, root)
	if err != nil {
		results = append(results, Result{Name: "branch", Status: StatusFail, Detail: err.Error()})
	} else {
		results = append(results, checkBranch(cfg, branch))
	}

	results = append(results, checkWorktree(git.IsDirty(ctx, root)))

	if cfg.SignCommit || cfg.SignTag {
		key, err := git.ConfigValue(ctx, root, "user.signingkey")
		if err != nil {
			results = append(results, Result{Name: "signing", Status: StatusFail, Detail: err.Error()})
		} else {
			results = append(results, checkSigning(cfg, key))
		}
	} else {
		results = append(results, Result{Name: "signing", Status: StatusOK, Detail: "not required"})
	}

	results = append(results, checkMessages(cfg, rc))
	results = append(results, checkReplacements(root, cfg, rc))

	return results
}

// checkConfig reports where the configuration came from.
// Running without a release.toml is legal but worth flagging.
func checkConfig(cfgPath string) Result {
	if cfgPath == "" {
		return Result{Name: "config", Status: StatusWarn, Detail: "no release.toml found, using defaults"}
	}
	return Result{Name: "config", Status: StatusOK, Detail: cfgPath}
}

// checkBranch verifies the current branch against the allow-branch patterns.
func checkBranch(cfg *config.Config, branch string) Result {
	if cfg.BranchAllowed(branch) {
		if len(cfg.AllowBranch) == 0 {
			return Result{Name: "branch", Status: StatusOK, Detail: fmt.Sprintf("on %q (no restrictions)", branch)}
		}
		return Result{Name: "branch", Status: StatusOK, Detail: fmt.Sprintf("on %q", branch)}
	}
	return Result{
		Name:   "branch",
		Status: StatusFail,
		Detail: fmt.Sprintf("branch %q does not match allow-branch %v", branch, cfg.AllowBranch),
	}
}

// checkWorktree requires a clean working tree; the orchestrator would
// otherwise sweep unrelated changes into the release commit.
func checkWorktree(dirty bool) Result {
	if dirty {
		return Result{Name: "worktree", Status: StatusFail, Detail: "uncommitted changes present"}
	}
	return Result{Name: "worktree", Status: StatusOK, Detail: "clean"}
}

// checkSigning verifies signing configuration when sign-commit or sign-tag
// is enabled.
func checkSigning(cfg *config.Config, signingKey string) Result {
	what := "commit"
	if cfg.SignTag && !cfg.SignCommit {
		what = "tag"
	} else if cfg.SignTag && cfg.SignCommit {
		what = "commit and tag"
	}

	if signingKey == "" {
		return Result{
			Name:   "signing",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s signing enabled but user.signingkey is not set", what),
		}
	}
	return Result{Name: "signing", Status: StatusOK, Detail: fmt.Sprintf("%s signing with key %s", what, signingKey)}
}

// checkMessages verifies both commit message templates render.
func checkMessages(cfg *config.Config, rc replace.Context) Result {
	if _, err := rc.Expand(cfg.PreReleaseCommitMessage); err != nil {
		return Result{Name: "messages", Status: StatusFail, Detail: fmt.Sprintf("pre-release-commit-message: %v", err)}
	}
	if _, err := rc.Expand(cfg.PostReleaseCommitMessage); err != nil {
		return Result{Name: "messages", Status: StatusFail, Detail: fmt.Sprintf("post-release-commit-message: %v", err)}
	}
	return Result{Name: "messages", Status: StatusOK, Detail: "templates render"}
}

// checkReplacements dry-runs the replacement rules against the working tree.
func checkReplacements(root string, cfg *config.Config, rc replace.Context) Result {
	if len(cfg.PreReleaseReplacements) == 0 {
		return Result{Name: "replacements", Status: StatusOK, Detail: "none configured"}
	}

	changes, err := replace.Run(root, cfg.PreReleaseReplacements, rc)
	if err != nil {
		return Result{Name: "replacements", Status: StatusFail, Detail: err.Error()}
	}

	files := 0
	matches := 0
	for i := range changes {
		files++
		matches += changes[i].Matches
	}
	return Result{
		Name:   "replacements",
		Status: StatusOK,
		Detail: fmt.Sprintf("%d rules verified (%d matches in %d files)", len(cfg.PreReleaseReplacements), matches, files),
	}
}
