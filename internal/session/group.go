package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"imgresolve/internal/curation"
	"imgresolve/internal/dupelog"
	"imgresolve/internal/fileutil"
	"imgresolve/internal/logging"
	"imgresolve/internal/probe"
	"imgresolve/internal/textutil"
)

// groupReview owns one group's members and metadata until it is resolved.
type groupReview struct {
	*Session
	index   int
	total   int
	members dupelog.Group
	cache   *probe.Cache
}

func (g *groupReview) loop(ctx context.Context) (outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return outcomeResolved, err
		}
		members, err := g.curator.Curate(g.members, g.curation)
		if err != nil {
			if errors.Is(err, curation.ErrCannotCurate) {
				return outcomeResolved, nil
			}
			return outcomeResolved, err
		}
		g.members = members

		renderHeader(g.out, len(g.members), g.index, g.total, g.colorize)
		renderMembers(g.out, g.members, func(path string) probe.FileMetadata {
			return g.cache.Get(ctx, path)
		})

		line, err := g.prompt(ctx, "Action: ")
		if err != nil {
			return outcomeResolved, err
		}
		cmd := parseCommand(line)
		switch cmd.kind {
		case cmdDelete:
			g.delete(ctx, cmd)
		case cmdConvert:
			g.convert(ctx, cmd)
		case cmdNext:
			fmt.Fprintln(g.out, "Continuing")
			return outcomeSkipped, nil
		case cmdQuit:
			return outcomeResolved, ErrQuit
		case cmdSkipSequential:
			g.curation.Sequential = true
			g.curation.CloseTimes = true
			fmt.Fprintln(g.out, "Skipping sequential and close-time files from now on")
			g.logger.Info("sequential collapsing enabled", logging.GroupIndex(g.index))
		case cmdView:
			if err := g.actions.View(g.members); err != nil {
				fmt.Fprintf(g.out, "Viewer failed: %v\n", err)
			}
		default:
			printHelp(g.out)
		}
	}
}

func (g *groupReview) delete(ctx context.Context, cmd command) {
	i, err := cmd.index(len(g.members))
	if err != nil {
		fmt.Fprintln(g.out, err)
		return
	}
	path := g.members[i]
	fmt.Fprintf(g.out, "Deleting %q\n", path)
	if err := g.actions.Trash(ctx, path); err != nil {
		fmt.Fprintf(g.out, "Trash failed, keeping file: %v\n", err)
		return
	}
	g.remove(i)
	g.logger.Info("file trashed", logging.GroupIndex(g.index), logging.Path(path))
}

func (g *groupReview) convert(ctx context.Context, cmd command) {
	i, err := cmd.index(len(g.members))
	if err != nil {
		fmt.Fprintln(g.out, err)
		return
	}
	src := g.members[i]
	dst, err := fileutil.JPEGSibling(src)
	if err != nil {
		fmt.Fprintf(g.out, "Cannot convert: %v\n", err)
		return
	}
	if fileutil.IsRegularFile(dst) {
		fmt.Fprintf(g.out, "Cannot convert: %s already exists\n", dst)
		return
	}

	fmt.Fprintf(g.out, "Converting %q to %q\n", src, dst)
	if err := g.actions.Convert(ctx, src, dst); err != nil {
		fmt.Fprintf(g.out, "Conversion failed: %v\n", err)
		return
	}
	if err := g.actions.Trash(ctx, src); err != nil {
		fmt.Fprintf(g.out, "Converted, but the original could not be trashed: %v\n", err)
		g.logger.Warn("original kept after conversion", logging.Path(src), logging.String("target", dst), logging.Error(err))
		return
	}
	g.members[i] = dst
	g.cache.Rename(src, dst)
	g.logger.Info("file converted", logging.GroupIndex(g.index), logging.Path(src), logging.String("target", dst))
}

func (g *groupReview) remove(i int) {
	g.cache.Forget(g.members[i])
	g.members = append(g.members[:i:i], g.members[i+1:]...)
}

// autoResolve offers to trash the lower-priority copy of a two-file group.
func (g *groupReview) autoResolve(ctx context.Context) error {
	if g.resolver == nil {
		return nil
	}
	meta := g.cache.Snapshot(g.members)
	proposal, ok := g.resolver.Propose(g.members, meta)
	if !ok {
		return nil
	}
	target := g.members[proposal.Delete]

	renderPair(g.out, g.members, meta)
	fmt.Fprintf(g.out, "\nGoing to delete %s\n", target)
	answer, err := g.prompt(ctx, "Does this look right? ")
	if err != nil {
		return err
	}
	if !strings.HasPrefix(textutil.FoldInput(answer), "y") {
		return nil
	}
	if err := g.actions.Trash(ctx, target); err != nil {
		fmt.Fprintf(g.out, "Trash failed, keeping file: %v\n", err)
		return nil
	}
	g.remove(proposal.Delete)
	g.logger.Info("auto-resolved", logging.GroupIndex(g.index), logging.Path(target), logging.String("rule", proposal.Rule))
	return nil
}
