package app

import "fmt"

// Build targets accepted on the command line.
const (
	// TargetAll compiles the shaders and builds the host binary.
	TargetAll = "all"
	// TargetShader compiles the shaders only.
	TargetShader = "shader"
	// TargetBuild builds the host binary only.
	TargetBuild = "build"
	// TargetRelease compiles the shaders and builds a stripped host binary.
	TargetRelease = "release"
	// TargetRun performs TargetAll, then runs the host binary with the
	// configured debug environment.
	TargetRun = "run"
	// TargetCleanShaders removes the generated shader artifacts.
	TargetCleanShaders = "clean_shaders"
	// TargetClean removes the shader artifacts and the host binary.
	TargetClean = "clean"
	// TargetRe is TargetClean followed by TargetAll.
	TargetRe = "re"
)

// Targets lists every valid build target in help-text order.
var Targets = []string{
	TargetAll, TargetShader, TargetBuild, TargetRelease,
	TargetRun, TargetCleanShaders, TargetClean, TargetRe,
}

// ValidTarget reports whether name is a known build target.
func ValidTarget(name string) bool {
	for _, t := range Targets {
		if t == name {
			return true
		}
	}
	return false
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string
	Target       string

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, fmt.Errorf("ManifestPath is a required configuration field and cannot be empty")
	}
	if !ValidTarget(cfg.Target) {
		return nil, fmt.Errorf("unknown target %q", cfg.Target)
	}
	return &cfg, nil
}
