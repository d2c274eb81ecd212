// Package schema defines the HCL-facing structures of the build manifest.
// The hcl package decodes files into these and translates them into the
// format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Shaders represents the `shaders` block of a manifest.
type Shaders struct {
	SourceDirs []string `hcl:"source_dirs,optional"`
	OutputDir  string   `hcl:"output_dir,optional"`
	Extensions []string `hcl:"extensions,optional"`
}

// Toolchain represents the `toolchain` block of a manifest.
type Toolchain struct {
	Compiler     string     `hcl:"compiler,optional"`
	CacheDir     string     `hcl:"cache_dir,optional"`
	SourceRepo   string     `hcl:"source_repo,optional"`
	TrustedHosts []string   `hcl:"trusted_hosts,optional"`
	BuildSteps   [][]string `hcl:"build_steps,optional"`
	BinPath      string     `hcl:"bin_path,optional"`
}

// Host represents the `host` block of a manifest.
type Host struct {
	Binary   string   `hcl:"binary,optional"`
	Package  string   `hcl:"package,optional"`
	RunArgs  []string `hcl:"run_args,optional"`
	DebugEnv string   `hcl:"debug_env,optional"`
}

// Contract represents the `contract` block of a manifest. LightDirection is
// kept as a raw expression so the loader can evaluate and range-check it.
type Contract struct {
	LightDirection hcl.Expression `hcl:"light_direction,optional"`
}

// Manifest represents the top-level structure of a manifest file.
type Manifest struct {
	Shaders   *Shaders   `hcl:"shaders,block"`
	Toolchain *Toolchain `hcl:"toolchain,block"`
	Host      *Host      `hcl:"host,block"`
	Contract  *Contract  `hcl:"contract,block"`
	Body      hcl.Body   `hcl:",remain"`
}
