package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/shadergridgo/internal/config"
	"github.com/vk/shadergridgo/internal/shadergraph"
)

func writeScript(t *testing.T, path, script string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
}

// copyCompiler behaves like a working glslc; failFor makes it reject one
// specific source file by name.
func copyCompiler(t *testing.T, dir, failFor string) string {
	t.Helper()
	bin := filepath.Join(dir, "glslc")
	failClause := ""
	if failFor != "" {
		failClause = fmt.Sprintf(`case "$src" in
  *%s) echo "$src: compile error" >&2; exit 1 ;;
esac
`, failFor)
	}
	writeScript(t, bin, `#!/bin/sh
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
`+failClause+`cat "$src" > "$out"
if [ -n "$dep" ]; then
  printf '%s: %s\n' "$out" "$src" > "$dep"
fi
`)
	return bin
}

func setup(t *testing.T, sources map[string]string, failFor string) *shadergraph.Graph {
	t.Helper()
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "shaders")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	for name, content := range sources {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte(content), 0o644))
	}

	cfg := &config.Shaders{
		SourceDirs: []string{srcDir},
		OutputDir:  filepath.Join(dir, "out"),
		Extensions: []string{".vert", ".frag"},
	}
	return shadergraph.New(copyCompiler(t, t.TempDir(), failFor), cfg)
}

func TestRunCompilesEverythingOnce(t *testing.T) {
	g := setup(t, map[string]string{
		"a.vert": "void main() {}\n",
		"b.frag": "void main() {}\n",
		"c.frag": "void main() {}\n",
	}, "")

	stats, err := New(g, 4).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Compiled: 3}, stats)

	// Second pass over fresh artifacts is a no-op.
	stats, err = New(g, 4).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Skipped: 3}, stats)
}

func TestRunAggregatesFailuresWithoutAborting(t *testing.T) {
	g := setup(t, map[string]string{
		"a.vert":   "void main() {}\n",
		"bad.frag": "broken\n",
		"c.frag":   "void main() {}\n",
	}, "bad.frag")

	stats, err := New(g, 2).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile error")
	assert.Equal(t, 2, stats.Compiled)
	assert.Equal(t, 1, stats.Failed)

	// Healthy jobs are fresh on the next pass; only the failed one retries.
	stats, err = New(g, 2).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, Stats{Skipped: 2, Failed: 1}, stats)
}

func TestRunSingleWorker(t *testing.T) {
	g := setup(t, map[string]string{
		"a.vert": "void main() {}\n",
		"b.frag": "void main() {}\n",
	}, "")

	stats, err := New(g, 1).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Compiled: 2}, stats)
}

func TestRunDefaultsWorkerCount(t *testing.T) {
	g := setup(t, map[string]string{"a.vert": "void main() {}\n"}, "")
	e := New(g, 0)
	assert.Positive(t, e.workers)

	stats, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Compiled: 1}, stats)
}

func TestRunCancelledContext(t *testing.T) {
	g := setup(t, map[string]string{"a.vert": "void main() {}\n"}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := New(g, 1).Run(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, stats.Failed)
}
