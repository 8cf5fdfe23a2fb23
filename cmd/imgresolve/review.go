package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"imgresolve/internal/autoresolve"
	"imgresolve/internal/config"
	"imgresolve/internal/curation"
	"imgresolve/internal/dupelog"
	"imgresolve/internal/logging"
	"imgresolve/internal/preflight"
	"imgresolve/internal/probe"
	"imgresolve/internal/resume"
	"imgresolve/internal/session"
	"imgresolve/internal/tools"
)

func runReview(cmd *cobra.Command, ctx *commandContext, logArg string, skipSequential bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	logPath, err := config.ExpandPath(logArg)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	if err := preflight.Failed(preflight.RunAll(cfg, logPath)); err != nil {
		return err
	}

	groups, err := dupelog.ParseFile(logPath)
	if err != nil {
		return err
	}

	store, err := resume.Open(resume.PathFor(logPath))
	if err != nil {
		if errors.Is(err, resume.ErrLocked) {
			return fmt.Errorf("%s is already being reviewed by another session: %w", logPath, err)
		}
		return err
	}
	defer store.Close()

	toolbox := tools.New(cfg.Tools, tools.ExecRunner{}, logger)
	var inspector probe.Inspector
	if cfg.InspectorBinary() != "" {
		inspector = toolbox
	}
	var resolver *autoresolve.Resolver
	if cfg.AutoResolve.Enabled {
		resolver = autoresolve.New(autoresolve.RulesFromConfig(cfg.AutoResolve.Rules)...)
	}

	collapse := collapseOptions(cfg, skipSequential)
	logger.Info("starting review",
		logging.Path(logPath),
		logging.Int("groups", len(groups)),
		logging.String("resume_file", store.Path()),
		logging.Bool("skip_sequential", collapse.Sequential),
	)

	out := cmd.OutOrStdout()
	s := session.New(session.Options{
		In:           cmd.InOrStdin(),
		Out:          out,
		Curator:      curation.NewCurator(cfg.Curation.CloseTimeThreshold, logger),
		Prober:       probe.New(inspector, logger),
		Resolver:     resolver,
		Actions:      toolbox,
		Store:        store,
		Logger:       logger,
		Curation:     collapse,
		MaxGroupSize: cfg.Curation.MaxGroupSize,
		Colorize:     shouldColorize(out),
	})

	// Ctrl-C cancels runCtx; the session abandons the pending prompt and Run
	// returns context.Canceled, which main reports silently.
	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = s.Run(runCtx, groups)
	if errors.Is(err, session.ErrQuit) {
		fmt.Fprintf(out, "Stopped; progress saved to %s\n", store.Path())
		return nil
	}
	return err
}

// collapseOptions turns on sequential and close-time collapsing together when
// skip-sequential is requested, matching the interactive ss command.
func collapseOptions(cfg *config.Config, skipSequential bool) curation.Options {
	if skipSequential || cfg.Curation.SkipSequential {
		return curation.Options{Sequential: true, CloseTimes: true}
	}
	return curation.Options{CloseTimes: cfg.Curation.CollapseCloseTimes}
}
