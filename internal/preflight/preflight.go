package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"imgresolve/internal/config"
	"imgresolve/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the startup checks for reviewing logPath: the directory
// that receives the resume file and every configured external tool.
func RunAll(cfg *config.Config, logPath string) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("Settings directory", filepath.Dir(logPath))}
	for _, status := range CheckTools(cfg) {
		results = append(results, fromStatus(status))
	}
	return results
}

// Failed returns an error describing the first failed result, or nil.
func Failed(results []Result) error {
	for _, r := range results {
		if !r.Passed {
			return fmt.Errorf("preflight %s: %s", r.Name, r.Detail)
		}
	}
	return nil
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckTools evaluates the external programs named in the tools section.
// Only the trash mover is required; the others degrade single commands.
func CheckTools(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "Trash",
			Command:     cfg.TrashBinary(),
			Description: "Required for deleting files",
		},
		{
			Name:        "Converter",
			Command:     cfg.ConvertBinary(),
			Description: "Converts TIFF files to JPEG",
			Optional:    true,
		},
		{
			Name:        "Viewer",
			Command:     cfg.ViewerBinary(),
			Description: "Displays a group side by side",
			Optional:    true,
		},
	}
	if cfg.InspectorBinary() != "" {
		requirements = append(requirements, deps.Requirement{
			Name:        "Inspector",
			Command:     cfg.InspectorBinary(),
			Description: "Reports file corruption next to each member",
			Optional:    true,
		})
	}
	return deps.CheckBinaries(requirements)
}

func fromStatus(status deps.Status) Result {
	result := Result{Name: status.Name, Passed: status.Available || status.Optional, Detail: status.Detail}
	if result.Detail == "" {
		result.Detail = status.Command
	}
	if !status.Available && status.Optional {
		result.Detail += " (optional)"
	}
	return result
}
