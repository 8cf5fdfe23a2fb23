package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imgresolve/internal/resume"
	"imgresolve/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	binDir     string
	configPath string
	trashLog   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}
	trashLog := filepath.Join(base, "trash.log")
	trash := testsupport.WriteScript(t, binDir, "trash-stub",
		fmt.Sprintf("echo \"$2\" >> %q\n/bin/rm -f \"$2\"", trashLog))
	viewer := testsupport.WriteScript(t, binDir, "viewer-stub", "exit 0")

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[tools]
inspect_command = []
trash_command = [%q, "trash"]
convert_command = ["/bin/false"]
viewer_command = [%q]

[auto_resolve]
enabled = false
`, trash, viewer)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, binDir: binDir, configPath: configPath, trashLog: trashLog}
}

func runCLI(t *testing.T, args []string, configPath, input string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeDupeLog(t *testing.T, dir string, groups ...[]string) string {
	t.Helper()
	var lines []string
	for _, group := range groups {
		for _, path := range group {
			testsupport.WriteFile(t, path, 2048)
		}
		lines = append(lines, strings.Join(group, " "))
	}
	logPath := filepath.Join(dir, "dupes.log")
	if err := os.WriteFile(logPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return logPath
}

func lastGroup(t *testing.T, logPath string) (int, bool) {
	t.Helper()
	store, err := resume.Open(resume.PathFor(logPath))
	if err != nil {
		t.Fatalf("open resume store: %v", err)
	}
	defer store.Close()
	return store.LastGroup()
}

func TestReviewDeletesAndSavesProgress(t *testing.T) {
	env := setupCLITestEnv(t)
	photos := filepath.Join(env.baseDir, "photos")
	keep, drop := filepath.Join(photos, "a.jpg"), filepath.Join(photos, "b.jpg")
	logPath := writeDupeLog(t, env.baseDir, []string{drop, keep})

	out, _, err := runCLI(t, []string{logPath}, env.configPath, "d1\n")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	requireContains(t, out, "2 files in group 1/1:")
	requireContains(t, out, "2.000 kB")
	requireContains(t, out, "All groups reviewed.")

	if _, err := os.Stat(drop); !os.IsNotExist(err) {
		t.Fatalf("expected %s trashed, stat err=%v", drop, err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("expected %s kept: %v", keep, err)
	}
	trashed, err := os.ReadFile(env.trashLog)
	if err != nil {
		t.Fatalf("read trash log: %v", err)
	}
	if strings.TrimSpace(string(trashed)) != drop {
		t.Fatalf("unexpected trash invocations %q", trashed)
	}
	if index, ok := lastGroup(t, logPath); !ok || index != 0 {
		t.Fatalf("expected resume marker 0, got %d ok=%v", index, ok)
	}
}

func TestReviewQuitIsCleanExit(t *testing.T) {
	env := setupCLITestEnv(t)
	photos := filepath.Join(env.baseDir, "photos")
	logPath := writeDupeLog(t, env.baseDir,
		[]string{filepath.Join(photos, "a.jpg"), filepath.Join(photos, "b.jpg")},
		[]string{filepath.Join(photos, "c.jpg"), filepath.Join(photos, "d.jpg")},
	)

	out, _, err := runCLI(t, []string{logPath}, env.configPath, "n\nq\n")
	if err != nil {
		t.Fatalf("quit should not be an error: %v", err)
	}
	requireContains(t, out, "Stopped; progress saved to "+resume.PathFor(logPath))
	if index, ok := lastGroup(t, logPath); !ok || index != 0 {
		t.Fatalf("expected resume marker 0 after skipping first group, got %d ok=%v", index, ok)
	}

	out, _, err = runCLI(t, []string{logPath}, env.configPath, "q\n")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	requireContains(t, out, "group 1/2")
}

func TestReviewSkipSequentialFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	photos := filepath.Join(env.baseDir, "photos")
	logPath := writeDupeLog(t, env.baseDir, []string{
		filepath.Join(photos, "DSC_0100.JPG"),
		filepath.Join(photos, "DSC_0101.JPG"),
	})

	out, _, err := runCLI(t, []string{"--skip-sequential", logPath}, env.configPath, "")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	requireContains(t, out, "singular group")
	requireContains(t, out, "All groups reviewed.")
}

func TestReviewInterruptedExitsWithoutSaving(t *testing.T) {
	env := setupCLITestEnv(t)
	photos := filepath.Join(env.baseDir, "photos")
	drop := filepath.Join(photos, "b.jpg")
	logPath := writeDupeLog(t, env.baseDir, []string{filepath.Join(photos, "a.jpg"), drop})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("d1\n"))
	cmd.SetArgs([]string{"--config", env.configPath, logPath})

	if err := cmd.ExecuteContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(drop); err != nil {
		t.Fatalf("interrupted review must not trash files: %v", err)
	}
	if _, ok := lastGroup(t, logPath); ok {
		t.Fatal("interrupted group must not be recorded as reviewed")
	}
	if _, err := os.Stat(resume.PathFor(logPath) + ".lock"); !os.IsNotExist(err) {
		t.Fatalf("expected lock file removed on exit, stat err=%v", err)
	}
}

func TestReviewRequiresLogArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, nil, env.configPath, ""); err == nil {
		t.Fatal("expected error without log file")
	}
}

func TestReviewMissingLog(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{filepath.Join(env.baseDir, "absent.log")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for missing log")
	}
}

func TestReviewRefusesConcurrentSession(t *testing.T) {
	env := setupCLITestEnv(t)
	photos := filepath.Join(env.baseDir, "photos")
	logPath := writeDupeLog(t, env.baseDir, []string{filepath.Join(photos, "a.jpg"), filepath.Join(photos, "b.jpg")})

	store, err := resume.Open(resume.PathFor(logPath))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	_, _, err = runCLI(t, []string{logPath}, env.configPath, "q\n")
	if err == nil || !strings.Contains(err.Error(), "already being reviewed") {
		t.Fatalf("expected lock error, got %v", err)
	}
}

func TestDoctorReportsTools(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"doctor"}, env.configPath, "")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "Trash")
	requireContains(t, out, "trash-stub")
	requireContains(t, out, "Viewer")
}

func TestDoctorFailsWithoutTrash(t *testing.T) {
	env := setupCLITestEnv(t)
	content := "[tools]\ninspect_command = []\ntrash_command = [\"definitely-not-installed-trash\"]\n"
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, err := runCLI(t, []string{"doctor"}, env.configPath, "")
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	requireContains(t, out, "MISSING")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Config path: "+env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestLogLevelFlagValidated(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"--log-level", "chatty", "config", "validate"}, env.configPath, "")
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected invalid level error, got %v", err)
	}
}
