package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/shadergridgo/internal/config"
)

type stubLoader struct {
	model *config.Model
	err   error
}

func (s *stubLoader) Load(ctx context.Context, path string) (*config.Model, error) {
	return s.model, s.err
}

// testModel wires a full manifest model around temp dirs and a shell-script
// compiler so targets can run end to end.
func testModel(t *testing.T) *config.Model {
	t.Helper()
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "shaders")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.vert"),
		[]byte("void main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.frag"),
		[]byte("void main() {}\n"), 0o644))

	compiler := filepath.Join(dir, "glslc")
	script := `#!/bin/sh
out=""
dep=""
prev=""
for a in "$@"; do
  case "$prev" in
    -o) out="$a" ;;
    -MF) dep="$a" ;;
  esac
  prev="$a"
  src="$a"
done
cat "$src" > "$out"
if [ -n "$dep" ]; then
  printf '%s: %s\n' "$out" "$src" > "$dep"
fi
`
	require.NoError(t, os.WriteFile(compiler, []byte(script), 0o755))

	model := &config.Model{
		Shaders: &config.Shaders{
			SourceDirs: []string{srcDir},
			OutputDir:  filepath.Join(dir, "out"),
		},
		Toolchain: &config.Toolchain{Compiler: compiler},
		Host:      &config.Host{Binary: filepath.Join(dir, "renderer")},
	}
	model.ApplyDefaults()
	return model
}

func testApp(t *testing.T, target string, model *config.Model) *App {
	t.Helper()
	appConfig, err := NewConfig(Config{
		ManifestPath: "shadergrid.hcl",
		Target:       target,
		LogFormat:    "json",
		LogLevel:     "error",
		WorkerCount:  2,
	})
	require.NoError(t, err)
	return NewApp(&bytes.Buffer{}, appConfig, &stubLoader{model: model})
}

func TestValidTarget(t *testing.T) {
	for _, target := range Targets {
		assert.True(t, ValidTarget(target), target)
	}
	assert.False(t, ValidTarget("install"))
	assert.False(t, ValidTarget(""))
}

func TestNewConfigRejectsUnknownTarget(t *testing.T) {
	_, err := NewConfig(Config{ManifestPath: "x.hcl", Target: "install"})
	assert.Error(t, err)
}

func TestNewAppPanicsOnLoaderError(t *testing.T) {
	appConfig, err := NewConfig(Config{ManifestPath: "x.hcl", Target: TargetAll})
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewApp(&bytes.Buffer{}, appConfig, &stubLoader{err: os.ErrNotExist})
	})
}

func TestRunShaderTarget(t *testing.T) {
	model := testModel(t)
	a := testApp(t, TargetShader, model)

	require.NoError(t, a.Run(context.Background()))

	assert.FileExists(t, filepath.Join(model.Shaders.OutputDir, "a.vert.spv"))
	assert.FileExists(t, filepath.Join(model.Shaders.OutputDir, "a.vert.spvasm"))
	assert.FileExists(t, filepath.Join(model.Shaders.OutputDir, "a.frag.spv"))
	assert.FileExists(t, filepath.Join(model.Shaders.OutputDir, "a.frag.spvasm"))

	// Running again is an incremental no-op.
	require.NoError(t, testApp(t, TargetShader, model).Run(context.Background()))
}

func TestRunCleanShadersTarget(t *testing.T) {
	model := testModel(t)
	require.NoError(t, testApp(t, TargetShader, model).Run(context.Background()))

	require.NoError(t, testApp(t, TargetCleanShaders, model).Run(context.Background()))
	assert.NoFileExists(t, filepath.Join(model.Shaders.OutputDir, "a.vert.spv"))
}

func TestRunCleanTarget(t *testing.T) {
	model := testModel(t)
	require.NoError(t, os.WriteFile(model.Host.Binary, []byte("x"), 0o755))

	require.NoError(t, testApp(t, TargetClean, model).Run(context.Background()))
	assert.NoFileExists(t, model.Host.Binary)
}

func TestRunShaderTargetSurfacesCompileError(t *testing.T) {
	model := testModel(t)
	bad := filepath.Join(t.TempDir(), "glslc")
	require.NoError(t, os.WriteFile(bad,
		[]byte("#!/bin/sh\necho 'error: syntax' >&2\nexit 1\n"), 0o755))
	model.Toolchain.Compiler = bad

	err := testApp(t, TargetShader, model).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax")
}
