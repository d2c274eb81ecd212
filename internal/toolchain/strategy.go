package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// explicitStrategy resolves a manifest-pinned compiler path. A pinned path
// that does not exist is a hard error, not a fall-through: silently ignoring
// an explicit override would hide a misconfigured manifest.
type explicitStrategy struct {
	path string
}

func (s *explicitStrategy) Name() string { return "explicit:" + s.path }

func (s *explicitStrategy) Locate(ctx context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", fmt.Errorf("pinned compiler %s: %w", s.path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("pinned compiler %s is a directory", s.path)
	}
	return s.path, nil
}

// pathStrategy resolves a binary name on the execution search path.
type pathStrategy struct {
	binary string
}

func (s *pathStrategy) Name() string { return "path:" + s.binary }

func (s *pathStrategy) Locate(ctx context.Context) (string, error) {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		return "", fmt.Errorf("%w: %s not on PATH", ErrNotFound, s.binary)
	}
	return path, nil
}
