package tools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes external programs.
type Runner interface {
	// Run waits for the program and returns its combined output. A non-zero
	// exit status is reported as an error.
	Run(ctx context.Context, argv []string) ([]byte, error)
	// Start launches the program without waiting for it.
	Start(argv []string) error
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("run: empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s: %w: %s", argv[0], err, strings.TrimSpace(string(output)))
	}
	return output, nil
}

// Start launches argv detached from the session; the child is never waited
// for and keeps running if imgresolve exits.
func (ExecRunner) Start(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("start: empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
