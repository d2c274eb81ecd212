package config

import "cogentcore.org/core/math32"

// Model is the unified, format-agnostic representation of the entire build
// manifest.
type Model struct {
	Shaders   *Shaders
	Toolchain *Toolchain
	Host      *Host
	Contract  *Contract
}

// Shaders describes where shader sources live and where compiled artifacts go.
type Shaders struct {
	// SourceDirs are the roots scanned for shader sources.
	SourceDirs []string

	// OutputDir is the root under which compiled artifacts mirror the
	// source tree.
	OutputDir string

	// Extensions are the source file suffixes treated as shader stages.
	Extensions []string
}

// Toolchain configures how the shader compiler binary is located or, as a
// last resort, provisioned from source.
type Toolchain struct {
	// Compiler is an explicit compiler path override. Empty means discover.
	Compiler string

	// CacheDir is where a provisioned compiler is cloned and built.
	CacheDir string

	// SourceRepo is the upstream repository of the compiler itself.
	SourceRepo string

	// TrustedHosts are hostname glob patterns on which provisioning (network
	// clone + native build) is permitted.
	TrustedHosts []string

	// BuildSteps are the commands, run inside the clone, that produce the
	// compiler binary.
	BuildSteps [][]string

	// BinPath is the built binary's path relative to the source checkout
	// inside CacheDir.
	BinPath string
}

// Host describes the host renderer application driven by the build targets.
type Host struct {
	// Binary is the output binary name for build/clean targets.
	Binary string

	// Package is the Go package path passed to the host build.
	Package string

	// RunArgs are extra arguments for the run target.
	RunArgs []string

	// DebugEnv is the NAME=value logging variable set by the run target.
	DebugEnv string
}

// Contract carries the tunable parts of the shading contract.
type Contract struct {
	// LightDirection is the directional light the vertex stage shades
	// against. It mirrors the compile-time constant in the GLSL sources.
	LightDirection math32.Vector3
}
