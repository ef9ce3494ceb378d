package main

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/raphi011/relprep/internal/config"
	"github.com/raphi011/relprep/internal/git"
	"github.com/raphi011/relprep/internal/replace"
	verpkg "github.com/raphi011/relprep/internal/version"
)

// release bundles everything the release commands resolve up front:
// the repository root, the loaded configuration, and the previous/next
// versions with the placeholder context derived from them.
type release struct {
	Root    string
	Cfg     config.Config
	CfgPath string
	Prev    *semver.Version
	Next    *semver.Version
	Ctx     replace.Context
}

// resolveRelease locates the repository, loads release.toml, and resolves
// the previous version (latest release tag) and next version (explicit
// --version, or previous bumped by --level).
func resolveRelease(ctx context.Context, dir, explicitVersion, levelStr string) (*release, error) {
	root, err := git.TopLevel(ctx, dir)
	if err != nil {
		return nil, err
	}

	cfg, cfgPath, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	tags, err := git.Tags(ctx, root)
	if err != nil {
		return nil, err
	}
	prev := verpkg.LatestFromTags(tags, cfg.TagPrefix)
	if prev == nil {
		prev = verpkg.Zero()
	}

	var next *semver.Version
	if explicitVersion != "" {
		next, err = verpkg.Parse(explicitVersion)
		if err != nil {
			return nil, err
		}
	} else {
		level, err := verpkg.ParseLevel(levelStr)
		if err != nil {
			return nil, err
		}
		next = verpkg.Bump(prev, level)
	}

	if !next.GreaterThan(prev) {
		return nil, fmt.Errorf("next version %s is not greater than previous release %s", next, prev)
	}

	name := git.RepoName(ctx, root)
	rc := replace.NewContext(next.String(), prev.String(), name, cfg.TagName(next.String()))

	return &release{
		Root:    root,
		Cfg:     cfg,
		CfgPath: cfgPath,
		Prev:    prev,
		Next:    next,
		Ctx:     rc,
	}, nil
}
