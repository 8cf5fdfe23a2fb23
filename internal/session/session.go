package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"imgresolve/internal/autoresolve"
	"imgresolve/internal/curation"
	"imgresolve/internal/dupelog"
	"imgresolve/internal/logging"
	"imgresolve/internal/probe"
)

// ErrQuit is returned by Run when the user quits or input ends.
var ErrQuit = errors.New("review aborted by user")

// Curator reduces a raw group to the members worth showing.
type Curator interface {
	Curate(group dupelog.Group, opts curation.Options) (dupelog.Group, error)
}

// FileActions performs the external side effects of the review commands.
type FileActions interface {
	Trash(ctx context.Context, path string) error
	Convert(ctx context.Context, src, dst string) error
	View(paths []string) error
}

// ResumeStore records the last completed group.
type ResumeStore interface {
	LastGroup() (int, bool)
	SetLastGroup(index int) error
}

// Options wires a Session. Resolver and Store are optional.
type Options struct {
	In           io.Reader
	Out          io.Writer
	Curator      Curator
	Prober       probe.Source
	Resolver     *autoresolve.Resolver
	Actions      FileActions
	Store        ResumeStore
	Logger       *slog.Logger
	Curation     curation.Options
	MaxGroupSize int
	Colorize     bool
}

// Session walks duplicate groups interactively.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	curator  Curator
	prober   probe.Source
	resolver *autoresolve.Resolver
	actions  FileActions
	store    ResumeStore
	logger   *slog.Logger
	maxGroup int
	colorize bool
	lines    chan lineResult

	// curation options change when the user types "ss" and stay changed for
	// the remaining groups.
	curation curation.Options
}

// New builds a session from opts.
func New(opts Options) *Session {
	logger := logging.NewComponentLogger(opts.Logger, "session").
		With(logging.String(logging.FieldSessionID, uuid.NewString()))
	return &Session{
		in:       bufio.NewReader(opts.In),
		out:      opts.Out,
		curator:  opts.Curator,
		prober:   opts.Prober,
		resolver: opts.Resolver,
		actions:  opts.Actions,
		store:    opts.Store,
		logger:   logger,
		maxGroup: opts.MaxGroupSize,
		colorize: opts.Colorize,
		curation: opts.Curation,
	}
}

type outcome int

const (
	outcomeResolved outcome = iota
	outcomeSkipped
)

func (o outcome) String() string {
	if o == outcomeSkipped {
		return "skipped"
	}
	return "resolved"
}

// Run reviews groups in order, starting at the recorded resume marker. Groups
// before the marker are not touched at all. After each group the marker is
// saved. It returns ErrQuit when the user quits.
func (s *Session) Run(ctx context.Context, groups []dupelog.Group) error {
	start := 0
	if s.store != nil {
		if last, ok := s.store.LastGroup(); ok {
			start = last
			s.logger.Info("resuming review", logging.GroupIndex(last), logging.Int("groups", len(groups)))
		}
	}

	for i := start; i < len(groups); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := s.reviewGroup(ctx, i, len(groups), groups[i])
		if err != nil {
			return err
		}
		s.logger.Debug("group finished", logging.GroupIndex(i), logging.String("outcome", result.String()))
		if s.store != nil {
			if err := s.store.SetLastGroup(i); err != nil {
				return fmt.Errorf("save resume state: %w", err)
			}
		}
	}
	fmt.Fprintln(s.out, "All groups reviewed.")
	return nil
}

func (s *Session) reviewGroup(ctx context.Context, index, total int, raw dupelog.Group) (outcome, error) {
	fmt.Fprintf(s.out, "group %d/%d ", index+1, total)
	if s.maxGroup > 0 && len(raw) > s.maxGroup {
		fmt.Fprintf(s.out, "has %d files, skipping\n", len(raw))
		return outcomeSkipped, nil
	}

	members, err := s.curator.Curate(raw.Clone(), s.curation)
	if err != nil {
		if errors.Is(err, curation.ErrCannotCurate) {
			fmt.Fprintln(s.out, err)
			return outcomeResolved, nil
		}
		return outcomeResolved, err
	}

	g := &groupReview{
		Session: s,
		index:   index,
		total:   total,
		members: members,
		cache:   probe.NewCache(s.prober),
	}
	g.cache.ProbeGroup(ctx, s.out, members)

	if err := g.autoResolve(ctx); err != nil {
		return outcomeResolved, err
	}
	return g.loop(ctx)
}

// prompt prints label and reads one line. A final line without newline is
// returned as-is; end of input maps to ErrQuit. Cancelling ctx abandons the
// pending read and returns ctx.Err().
func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(s.out, label)
	if s.lines == nil {
		s.lines = make(chan lineResult, 1)
		go s.readLines()
	}

	var res lineResult
	var open bool
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", ctx.Err()
	case res, open = <-s.lines:
	}
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(s.out)
		return "", err
	}
	if !open {
		fmt.Fprintln(s.out)
		return "", ErrQuit
	}
	if res.err != nil {
		if errors.Is(res.err, io.EOF) {
			if res.line != "" {
				return res.line, nil
			}
			fmt.Fprintln(s.out)
			return "", ErrQuit
		}
		return "", fmt.Errorf("read input: %w", res.err)
	}
	return res.line, nil
}

type lineResult struct {
	line string
	err  error
}

// readLines feeds prompt from a single goroutine so a blocked read never
// holds up cancellation. It closes the channel after the first read error.
func (s *Session) readLines() {
	defer close(s.lines)
	for {
		line, err := s.in.ReadString('\n')
		s.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}
