package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"imgresolve/internal/config"
	"imgresolve/internal/logging"
)

// ErrDisabled is returned by Inspect when no inspector is configured.
var ErrDisabled = errors.New("tool disabled")

// Toolbox invokes the configured external collaborators.
type Toolbox struct {
	cfg    config.Tools
	runner Runner
	logger *slog.Logger
}

// New returns a Toolbox. A nil runner uses ExecRunner.
func New(cfg config.Tools, runner Runner, logger *slog.Logger) *Toolbox {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Toolbox{
		cfg:    cfg,
		runner: runner,
		logger: logging.NewComponentLogger(logger, "tools"),
	}
}

// Inspect runs the inspector against path and returns its output. The
// output is returned even when the inspector exits non-zero, since that is
// how most validators report a corrupt file.
func (t *Toolbox) Inspect(ctx context.Context, path string) (string, error) {
	if len(t.cfg.InspectCommand) == 0 {
		return "", ErrDisabled
	}
	out, err := t.runner.Run(ctx, withArgs(t.cfg.InspectCommand, path))
	return string(out), err
}

// Trash moves path to the desktop trash. Success means the trash command
// exited zero.
func (t *Toolbox) Trash(ctx context.Context, path string) error {
	if _, err := t.runner.Run(ctx, withArgs(t.cfg.TrashCommand, path)); err != nil {
		t.logger.Warn("trash failed", logging.Path(path), logging.Error(err))
		return fmt.Errorf("trash %s: %w", path, err)
	}
	t.logger.Debug("trashed", logging.Path(path))
	return nil
}

// Convert re-encodes src into dst at the configured quality.
func (t *Toolbox) Convert(ctx context.Context, src, dst string) error {
	argv := withArgs(t.cfg.ConvertCommand, "-quality", strconv.Itoa(t.cfg.ConvertQuality), src, dst)
	if _, err := t.runner.Run(ctx, argv); err != nil {
		t.logger.Warn("convert failed", logging.Path(src), logging.String("target", dst), logging.Error(err))
		return fmt.Errorf("convert %s: %w", src, err)
	}
	return nil
}

// View opens paths in the image viewer and returns immediately.
func (t *Toolbox) View(paths []string) error {
	if err := t.runner.Start(withArgs(t.cfg.ViewerCommand, paths...)); err != nil {
		t.logger.Warn("viewer failed to start", logging.Error(err))
		return fmt.Errorf("view: %w", err)
	}
	return nil
}

func withArgs(prefix []string, args ...string) []string {
	argv := make([]string, 0, len(prefix)+len(args))
	argv = append(argv, prefix...)
	return append(argv, args...)
}
