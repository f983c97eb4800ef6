package cmd

import (
	"github.com/hybris-mobian/changelog-go/internal/changelog"
	"github.com/hybris-mobian/changelog-go/internal/output"
	"github.com/hybris-mobian/changelog-go/internal/version"
	"github.com/urfave/cli/v2"
)

// generateAction builds the changelog: it resolves the version and
// release, validates the packaging metadata, and streams one stanza per
// version boundary into the output file.
func generateAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	resolver := &version.Resolver{
		Source:       ctx.Source,
		Pkg:          ctx.Pkg,
		Commit:       ctx.Commit,
		Tag:          ctx.Tag,
		TagPrefix:    ctx.TagPrefix,
		Branch:       ctx.Branch,
		BranchPrefix: ctx.BranchPrefix,
		Comment:      ctx.Comment,
	}

	// Resolve the version before the changelog file is replaced, so the
	// pre-existing-changelog fallback strategy can still read it.
	ver := resolver.Version()
	release, err := resolver.Release()
	if err != nil {
		return err
	}

	// Validate packaging metadata before touching the output file.
	name, err := ctx.Pkg.Name()
	if err != nil {
		return err
	}
	if _, err := ctx.Pkg.Native(); err != nil {
		return err
	}

	output.Infof("Resulting version is %s", ver)

	writer, err := output.NewStanzaWriter(ctx.OutputPath)
	if err != nil {
		return err
	}
	defer writer.Close()

	builder := &changelog.Builder{
		Source:      ctx.Source,
		TagPrefix:   ctx.TagPrefix,
		StartCommit: ctx.Commit.Hash,
		Release:     release,
		Version:     ver,
	}

	return builder.Build(func(rel, ver string, entry *changelog.Entry) error {
		return writer.WriteStanza(changelog.Render(name, ver, rel, ctx.Config.Urgency, entry))
	})
}
