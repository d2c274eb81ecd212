package app

import (
	"context"
	"fmt"

	"github.com/vk/shadergridgo/internal/ctxlog"
	"github.com/vk/shadergridgo/internal/executor"
	"github.com/vk/shadergridgo/internal/host"
	"github.com/vk/shadergridgo/internal/shadergraph"
	"github.com/vk/shadergridgo/internal/toolchain"
)

// Run executes the configured build target.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "target", a.appConfig.Target)

	switch a.appConfig.Target {
	case TargetShader:
		return a.buildShaders(ctx)
	case TargetBuild:
		return host.New(a.model.Host).Build(ctx, false)
	case TargetAll:
		return a.buildAll(ctx, false)
	case TargetRelease:
		return a.buildAll(ctx, true)
	case TargetRun:
		if err := a.buildAll(ctx, false); err != nil {
			return err
		}
		return host.New(a.model.Host).Run(ctx)
	case TargetCleanShaders:
		return shadergraph.Clean(ctx, a.model.Shaders)
	case TargetClean:
		return a.clean(ctx)
	case TargetRe:
		if err := a.clean(ctx); err != nil {
			return err
		}
		return a.buildAll(ctx, false)
	}
	return fmt.Errorf("unknown target %q", a.appConfig.Target)
}

// buildAll compiles the shaders, then builds the host binary.
func (a *App) buildAll(ctx context.Context, release bool) error {
	if err := a.buildShaders(ctx); err != nil {
		return err
	}
	return host.New(a.model.Host).Build(ctx, release)
}

// buildShaders locates a compiler and drives the incremental shader build.
func (a *App) buildShaders(ctx context.Context) error {
	compiler, err := toolchain.NewLocator(a.model.Toolchain).Locate(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Shader compiler located.", "compiler", compiler)

	graph := shadergraph.New(compiler, a.model.Shaders)
	exec := executor.New(graph, a.appConfig.WorkerCount)
	// The bar would interleave badly with structured JSON output.
	exec.Progress = a.appConfig.LogFormat != "json"

	stats, err := exec.Run(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Shader targets settled.",
		"compiled", stats.Compiled, "skipped", stats.Skipped)
	return nil
}

// clean removes the shader artifacts and the host binary.
func (a *App) clean(ctx context.Context) error {
	if err := shadergraph.Clean(ctx, a.model.Shaders); err != nil {
		return err
	}
	return host.New(a.model.Host).Clean(ctx)
}
