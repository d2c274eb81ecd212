// Package host builds, runs, and cleans the renderer binary that consumes
// the compiled shader artifacts.
package host

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vk/shadergridgo/internal/config"
	"github.com/vk/shadergridgo/internal/ctxlog"
)

// Runner wraps the host binary lifecycle around one config.
type Runner struct {
	cfg    *config.Host
	goTool string

	// Stdout and Stderr receive the host binary's output. Defaults to the
	// process's own streams.
	Stdout *os.File
	Stderr *os.File
}

// New creates a runner for the configured host binary.
func New(cfg *config.Host) *Runner {
	return &Runner{
		cfg:    cfg,
		goTool: "go",
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Build compiles the host binary. A release build strips symbol tables and
// trims recorded source paths.
func (r *Runner) Build(ctx context.Context, release bool) error {
	logger := ctxlog.FromContext(ctx)

	args := []string{"build", "-o", r.cfg.Binary}
	if release {
		args = append(args, "-ldflags", "-s -w", "-trimpath")
	}
	args = append(args, r.cfg.Package)

	logger.Info("Building host binary.", "binary", r.cfg.Binary, "release", release)
	cmd := exec.CommandContext(ctx, r.goTool, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("building host binary %s: %w\n%s", r.cfg.Binary, err, out)
	}
	return nil
}

// Run launches the built binary with the configured debug environment and
// arguments, streaming its output.
func (r *Runner) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	bin := r.cfg.Binary
	if !strings.ContainsRune(bin, os.PathSeparator) {
		// Never resolve the binary through PATH.
		bin = "." + string(os.PathSeparator) + bin
	}

	cmd := exec.CommandContext(ctx, bin, r.cfg.RunArgs...)
	cmd.Env = os.Environ()
	if r.cfg.DebugEnv != "" {
		cmd.Env = append(cmd.Env, r.cfg.DebugEnv)
	}
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Info("Running host binary.", "binary", bin, "env", r.cfg.DebugEnv)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running host binary %s: %w", bin, err)
	}
	return nil
}

// Clean removes the built binary. A missing binary is not an error.
func (r *Runner) Clean(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.Remove(r.cfg.Binary); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("removing host binary %s: %w", r.cfg.Binary, err)
	}
	logger.Debug("Removed host binary.", "binary", filepath.Clean(r.cfg.Binary))
	return nil
}
