package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/Masterminds/vcs"
	"github.com/vk/shadergridgo/internal/config"
	"github.com/vk/shadergridgo/internal/ctxlog"
)

// provisionStrategy clones the compiler's own source repository into the
// cache directory and builds it natively. This is expensive and only allowed
// on trusted hosts; a lock file keeps concurrent builds from racing, and an
// already-built binary short-circuits everything.
type provisionStrategy struct {
	cacheDir     string
	binPath      string
	sourceRepo   string
	trustedHosts []string
	buildSteps   [][]string

	// hostname is injected for tests.
	hostname func() (string, error)
}

func newProvisionStrategy(cfg *config.Toolchain) *provisionStrategy {
	return &provisionStrategy{
		cacheDir:     cfg.CacheDir,
		binPath:      cfg.BinPath,
		sourceRepo:   cfg.SourceRepo,
		trustedHosts: cfg.TrustedHosts,
		buildSteps:   cfg.BuildSteps,
		hostname:     os.Hostname,
	}
}

func (s *provisionStrategy) Name() string { return "provision:" + s.sourceRepo }

func (s *provisionStrategy) Locate(ctx context.Context) (string, error) {
	logger := ctxlog.FromContext(ctx)
	bin := filepath.Join(s.cacheDir, "src", s.binPath)

	// A previous provisioning run short-circuits everything, including the
	// trust check: the binary is already local.
	if isExecutable(bin) {
		return bin, nil
	}

	trusted, host, err := s.trustedHost()
	if err != nil {
		return "", err
	}
	if !trusted {
		return "", fmt.Errorf("%w: provisioning unavailable on host %q", ErrNotFound, host)
	}

	unlock, err := s.acquireLock(ctx)
	if err != nil {
		return "", err
	}
	defer unlock()

	// Another invocation may have finished while we waited for the lock.
	if isExecutable(bin) {
		return bin, nil
	}

	srcDir := filepath.Join(s.cacheDir, "src")
	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache dir: %w", err)
	}

	repo, err := vcs.NewRepo(s.sourceRepo, srcDir)
	if err != nil {
		return "", fmt.Errorf("provisioning %s: %w", s.sourceRepo, err)
	}
	if !repo.CheckLocal() {
		logger.Info("Cloning shader compiler sources.", "repo", s.sourceRepo, "dir", srcDir)
		if err := repo.Get(); err != nil {
			return "", fmt.Errorf("cloning %s: %w", s.sourceRepo, err)
		}
	}

	for _, step := range s.buildSteps {
		logger.Info("Running compiler build step.", "cmd", step)
		if err := runStep(ctx, srcDir, step); err != nil {
			return "", err
		}
	}

	if !isExecutable(bin) {
		return "", fmt.Errorf("provisioning completed but %s is missing or not executable", bin)
	}
	return bin, nil
}

// trustedHost reports whether the current hostname matches any of the
// configured trust patterns.
func (s *provisionStrategy) trustedHost() (bool, string, error) {
	host, err := s.hostname()
	if err != nil {
		return false, "", fmt.Errorf("resolving hostname: %w", err)
	}
	for _, pattern := range s.trustedHosts {
		ok, err := filepath.Match(pattern, host)
		if err != nil {
			return false, host, fmt.Errorf("bad trusted_hosts pattern %q: %w", pattern, err)
		}
		if ok {
			return true, host, nil
		}
	}
	return false, host, nil
}

// acquireLock serializes provisioning across processes with an exclusive
// lock file next to the cache directory.
func (s *provisionStrategy) acquireLock(ctx context.Context) (func(), error) {
	lockPath := s.cacheDir + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache parent dir: %w", err)
	}

	for {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			f.Close()
			return func() { os.Remove(lockPath) }, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("acquiring provision lock: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// runStep executes one build command inside the source checkout, surfacing
// its combined output on failure.
func runStep(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty build step")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("build step %v failed: %w\n%s", argv, err, out)
	}
	return nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
