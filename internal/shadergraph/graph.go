package shadergraph

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vk/shadergridgo/internal/config"
	"github.com/vk/shadergridgo/internal/ctxlog"
	"github.com/vk/shadergridgo/internal/depfile"
	"github.com/vk/shadergridgo/internal/fsutil"
)

// Graph drives compilation of the discovered shader jobs. Jobs are mutually
// independent; the only state shared between them is the read-only compiler
// path and the mutex-guarded hash cache.
type Graph struct {
	compiler string
	cfg      *config.Shaders
	cache    *hashCache
}

// New creates a build graph using the located compiler.
func New(compiler string, cfg *config.Shaders) *Graph {
	return &Graph{
		compiler: compiler,
		cfg:      cfg,
		cache:    loadHashCache(filepath.Join(cfg.OutputDir, CacheFileName)),
	}
}

// Discover walks the configured source dirs and derives one job per source.
func (g *Graph) Discover(ctx context.Context) ([]*Job, error) {
	logger := ctxlog.FromContext(ctx)

	var jobs []*Job
	for _, root := range g.cfg.SourceDirs {
		sources, err := fsutil.FindFilesByExtensions(root, g.cfg.Extensions)
		if err != nil {
			return nil, fmt.Errorf("discovering shader sources under %s: %w", root, err)
		}
		for _, src := range sources {
			job, err := NewJob(src, root, g.cfg.OutputDir)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
	}

	logger.Debug("Shader sources discovered.", "count", len(jobs))
	return jobs, nil
}

// Stale reports whether a job needs recompiling. Both artifacts must exist,
// the dependency record must parse, and every input's content hash must match
// the cache; anything else is stale.
func (g *Graph) Stale(ctx context.Context, job *Job) bool {
	logger := ctxlog.FromContext(ctx).With("job", job.Name())

	for _, artifact := range []string{job.Binary, job.Assembly} {
		if _, err := os.Stat(artifact); err != nil {
			logger.Debug("Stale: artifact missing.", "artifact", artifact)
			return true
		}
	}

	deps, err := depfile.Parse(job.DepRecord)
	if err != nil {
		logger.Debug("Stale: no usable dependency record.", "error", err)
		return true
	}

	cached := g.cache.lookup(job.Source)
	if cached == nil {
		logger.Debug("Stale: no hash cache entry.")
		return true
	}

	current, err := hashInputs(job.Source, deps)
	if err != nil {
		logger.Debug("Stale: input unreadable.", "error", err)
		return true
	}
	if len(current) != len(cached) {
		logger.Debug("Stale: input set changed.")
		return true
	}
	for path, sum := range current {
		if cached[path] != sum {
			logger.Debug("Stale: input changed.", "input", path)
			return true
		}
	}
	return false
}

// Compile runs the compiler twice for one job: once for the SPIR-V binary
// (emitting the shared dependency record) and once for the disassembly. Both
// outputs go through a temp-and-rename so a failed compile never clobbers an
// intact artifact. On success the hash cache entry is refreshed.
func (g *Graph) Compile(ctx context.Context, job *Job) error {
	logger := ctxlog.FromContext(ctx).With("job", job.Name())

	if err := os.MkdirAll(filepath.Dir(job.Binary), 0o755); err != nil {
		return fmt.Errorf("creating output dir for %s: %w", job.Name(), err)
	}

	logger.Debug("Compiling shader.", "source", job.Source)
	if err := g.invoke(ctx, job.Binary,
		"-O", "-g", "-MD", "-MF", job.DepRecord, "-o", job.Binary+".tmp", job.Source); err != nil {
		return err
	}
	if err := g.invoke(ctx, job.Assembly,
		"-O", "-g", "-S", "-o", job.Assembly+".tmp", job.Source); err != nil {
		return err
	}

	deps, err := depfile.Parse(job.DepRecord)
	if err != nil {
		return fmt.Errorf("compiler emitted no usable dependency record for %s: %w", job.Name(), err)
	}
	inputs, err := hashInputs(job.Source, deps)
	if err != nil {
		return fmt.Errorf("hashing inputs of %s: %w", job.Name(), err)
	}
	g.cache.store(job.Source, inputs)
	return nil
}

// invoke runs one compiler invocation writing to target+".tmp" and renames
// into place on success. Compiler diagnostics are surfaced verbatim.
func (g *Graph) invoke(ctx context.Context, target string, args ...string) error {
	tmp := target + ".tmp"
	cmd := exec.CommandContext(ctx, g.compiler, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("compiling %s failed: %w\n%s", target, err, out)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("finalizing %s: %w", target, err)
	}
	return nil
}

// SaveCache persists the hash cache; call once after all jobs settle.
func (g *Graph) SaveCache() error {
	return g.cache.save()
}

// Clean removes every generated artifact class and the hash cache under the
// output root. Authored sources are never touched: only the artifact
// suffixes and the cache file itself are considered generated.
func Clean(ctx context.Context, cfg *config.Shaders) error {
	logger := ctxlog.FromContext(ctx)

	err := filepath.WalkDir(cfg.OutputDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		generated := name == CacheFileName ||
			strings.HasSuffix(name, BinarySuffix) ||
			strings.HasSuffix(name, AssemblySuffix) ||
			strings.HasSuffix(name, DepSuffix)
		if !generated {
			return nil
		}
		logger.Debug("Removing generated artifact.", "path", path)
		return os.Remove(path)
	})
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cleaning shader artifacts: %w", err)
	}
	return nil
}

// hashInputs hashes the source plus every recorded dependency. The source is
// always part of the input set even when the record omits it.
func hashInputs(source string, deps []string) (map[string]string, error) {
	inputs := make(map[string]string, len(deps)+1)
	for _, path := range append([]string{source}, deps...) {
		if _, done := inputs[path]; done {
			continue
		}
		sum, err := hashFile(path)
		if err != nil {
			return nil, err
		}
		inputs[path] = sum
	}
	return inputs, nil
}
