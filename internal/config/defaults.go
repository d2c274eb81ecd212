package config

import "cogentcore.org/core/math32"

// Default manifest values, used for omitted blocks and attributes.
var (
	DefaultSourceDirs = []string{"shaders"}
	DefaultOutputDir  = "shaders/bin"
	DefaultExtensions = []string{".vert", ".frag"}

	DefaultCacheDir   = ".cache/shaderc"
	DefaultSourceRepo = "https://github.com/google/shaderc"
	DefaultBinPath    = "build/glslc/glslc"

	DefaultHostBinary  = "scop"
	DefaultHostPackage = "./cmd/scop"
	DefaultDebugEnv    = "SCOP_LOG=debug"
)

// DefaultBuildSteps builds glslc the way shaderc's own README does.
func DefaultBuildSteps() [][]string {
	return [][]string{
		{"python3", "utils/git-sync-deps"},
		{"cmake", "-S", ".", "-B", "build", "-DCMAKE_BUILD_TYPE=Release", "-DSHADERC_SKIP_TESTS=ON"},
		{"cmake", "--build", "build", "--target", "glslc_exe"},
	}
}

// ApplyDefaults fills in every omitted block and attribute so downstream
// packages never see a nil section.
func (m *Model) ApplyDefaults() {
	if m.Shaders == nil {
		m.Shaders = &Shaders{}
	}
	if len(m.Shaders.SourceDirs) == 0 {
		m.Shaders.SourceDirs = DefaultSourceDirs
	}
	if m.Shaders.OutputDir == "" {
		m.Shaders.OutputDir = DefaultOutputDir
	}
	if len(m.Shaders.Extensions) == 0 {
		m.Shaders.Extensions = DefaultExtensions
	}

	if m.Toolchain == nil {
		m.Toolchain = &Toolchain{}
	}
	if m.Toolchain.CacheDir == "" {
		m.Toolchain.CacheDir = DefaultCacheDir
	}
	if m.Toolchain.SourceRepo == "" {
		m.Toolchain.SourceRepo = DefaultSourceRepo
	}
	if m.Toolchain.BinPath == "" {
		m.Toolchain.BinPath = DefaultBinPath
	}
	if len(m.Toolchain.BuildSteps) == 0 {
		m.Toolchain.BuildSteps = DefaultBuildSteps()
	}

	if m.Host == nil {
		m.Host = &Host{}
	}
	if m.Host.Binary == "" {
		m.Host.Binary = DefaultHostBinary
	}
	if m.Host.Package == "" {
		m.Host.Package = DefaultHostPackage
	}
	if m.Host.DebugEnv == "" {
		m.Host.DebugEnv = DefaultDebugEnv
	}

	if m.Contract == nil {
		m.Contract = &Contract{}
	}
	if (m.Contract.LightDirection == math32.Vector3{}) {
		m.Contract.LightDirection = math32.Vec3(1, 1, 1)
	}
}
