package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/hybris-mobian/changelog-go/config"
	"github.com/hybris-mobian/changelog-go/internal/deb"
	"github.com/hybris-mobian/changelog-go/internal/git"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution: the loaded
// configuration, the opened repository, the resolved target commit and
// the packaging metadata of its work tree.
type CommandContext struct {
	Config *config.Config
	Source git.RepositorySource
	Pkg    *deb.SourcePackage

	Commit       git.CommitInfo
	Tag          string
	TagPrefix    string
	Branch       string
	BranchPrefix string
	Comment      string
	OutputPath   string
}

// NewCommandContext creates a context from CLI flags. It loads the
// configuration, opens the repository, resolves the starting commit
// (flag or HEAD) and the branch (flag, or the checked-out branch when no
// tag was supplied), and locates the packaging metadata.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	repoPath := c.String("git-repository")
	reader, err := git.NewHistoryReader(repoPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load git repository at %s (use --git-repository to change the repo path): %w", repoPath, err)
	}

	rev := c.String("commit")
	if rev == "" {
		rev, err = reader.HeadHash()
		if err != nil {
			return nil, err
		}
	}
	commit, err := reader.Commit(rev)
	if err != nil {
		return nil, err
	}

	tag := c.String("tag")
	branch := c.String("branch")
	if branch == "" && tag == "" {
		branch, err = reader.CurrentBranch()
		if err != nil {
			return nil, err
		}
	}

	workDir := reader.WorkDir()
	outputPath := c.String("output")
	if outputPath == "" {
		outputPath = filepath.Join(workDir, filepath.FromSlash(cfg.ChangelogPath))
	}

	return &CommandContext{
		Config:       cfg,
		Source:       reader,
		Pkg:          deb.NewSourcePackage(workDir),
		Commit:       commit,
		Tag:          tag,
		TagPrefix:    stringOrConfig(c, "tag-prefix", cfg.TagPrefix),
		Branch:       branch,
		BranchPrefix: stringOrConfig(c, "branch-prefix", cfg.BranchPrefix),
		Comment:      stringOrConfig(c, "comment", cfg.Comment),
		OutputPath:   outputPath,
	}, nil
}

// stringOrConfig returns the flag value when it was explicitly set,
// falling back to the configured value. An explicitly empty flag wins
// over the config, allowing e.g. --tag-prefix "" to match bare tags.
func stringOrConfig(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}
