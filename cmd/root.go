package cmd

import (
	"os"

	"github.com/hybris-mobian/changelog-go/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "build-changelog",
		Usage:   "Builds a debian/changelog file from a git history tree",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "commit",
				Usage: "the commit to search from. Defaults to the current HEAD",
			},
			&cli.StringFlag{
				Name:  "git-repository",
				Usage: "the git repository to search on. Defaults to the current directory",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "the eventual tag that specifies the base version of the package",
			},
			&cli.StringFlag{
				Name:  "tag-prefix",
				Usage: "the prefix of the tag supplied with --tag. Defaults to hybris-mobian/",
			},
			&cli.StringFlag{
				Name:  "branch",
				Usage: "the branch where the commit is on. Defaults to the current branch",
			},
			&cli.StringFlag{
				Name:  "branch-prefix",
				Usage: "the prefix of the branch supplied with --branch. Defaults to feature/",
			},
			&cli.StringFlag{
				Name:  "comment",
				Usage: "a slugified comment that is set as version suffix. Defaults to release",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "the changelog file to write. Defaults to debian/changelog in the work tree",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: generateAction,
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		output.Errorf("%v", err)
		os.Exit(1)
	}
}
