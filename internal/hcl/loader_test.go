package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/shadergridgo/internal/config"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shadergrid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullManifest(t *testing.T) {
	path := writeManifest(t, `
shaders {
  source_dirs = ["shaders", "extra"]
  output_dir  = "out"
  extensions  = [".vert", ".frag"]
}

toolchain {
  compiler      = "/opt/glslc"
  cache_dir     = "/tmp/cache"
  source_repo   = "https://example.com/shaderc"
  trusted_hosts = ["*.campus.example"]
  build_steps   = [["make"], ["make", "install"]]
  bin_path      = "bin/glslc"
}

host {
  binary    = "renderer"
  package   = "./cmd/renderer"
  run_args  = ["model.obj"]
  debug_env = "RENDER_LOG=debug"
}

contract {
  light_direction = [1, 2, 3]
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"shaders", "extra"}, model.Shaders.SourceDirs)
	assert.Equal(t, "out", model.Shaders.OutputDir)
	assert.Equal(t, "/opt/glslc", model.Toolchain.Compiler)
	assert.Equal(t, []string{"*.campus.example"}, model.Toolchain.TrustedHosts)
	assert.Equal(t, [][]string{{"make"}, {"make", "install"}}, model.Toolchain.BuildSteps)
	assert.Equal(t, "renderer", model.Host.Binary)
	assert.Equal(t, []string{"model.obj"}, model.Host.RunArgs)
	assert.Equal(t, math32.Vec3(1, 2, 3), model.Contract.LightDirection)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeManifest(t, `
shaders {
  output_dir = "out"
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSourceDirs, model.Shaders.SourceDirs)
	assert.Equal(t, "out", model.Shaders.OutputDir)
	assert.Equal(t, config.DefaultExtensions, model.Shaders.Extensions)
	assert.Equal(t, config.DefaultSourceRepo, model.Toolchain.SourceRepo)
	assert.Equal(t, config.DefaultHostBinary, model.Host.Binary)
	assert.Equal(t, math32.Vec3(1, 1, 1), model.Contract.LightDirection)
}

func TestLoadMissingManifestUsesDefaults(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "dne.hcl"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutputDir, model.Shaders.OutputDir)
}

func TestLoadRejectsBadLightDirection(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
	}{
		{"wrong arity", `contract { light_direction = [1, 2] }`},
		{"zero vector", `contract { light_direction = [0, 0, 0] }`},
		{"not a list", `contract { light_direction = "up" }`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, tc.manifest)
			_, err := NewLoader().Load(context.Background(), path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeManifest(t, `shaders { output_dir = `)
	_, err := NewLoader().Load(context.Background(), path)
	assert.Error(t, err)
}
