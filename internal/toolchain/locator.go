package toolchain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vk/shadergridgo/internal/config"
	"github.com/vk/shadergridgo/internal/ctxlog"
)

// ErrNotFound reports that no discovery strategy produced a compiler binary.
var ErrNotFound = errors.New("shader compiler not found")

// Strategy is a single way of producing a compiler path. Locate returns
// ErrNotFound (possibly wrapped) to fall through to the next strategy; any
// other error aborts discovery.
type Strategy interface {
	Name() string
	Locate(ctx context.Context) (string, error)
}

// Locator runs an ordered strategy list and memoizes the first success, so
// repeated calls on an unchanged host return the same path without repeating
// any expensive discovery work.
type Locator struct {
	strategies []Strategy

	mu     sync.Mutex
	cached string
}

// NewLocator assembles the standard strategy order from the manifest's
// toolchain configuration.
func NewLocator(cfg *config.Toolchain) *Locator {
	var strategies []Strategy
	if cfg.Compiler != "" {
		strategies = append(strategies, &explicitStrategy{path: cfg.Compiler})
	}
	strategies = append(strategies,
		&pathStrategy{binary: "glslc"},
		&pathStrategy{binary: "glslc.exe"},
		newProvisionStrategy(cfg),
	)
	return &Locator{strategies: strategies}
}

// NewLocatorWithStrategies builds a locator from an explicit strategy list.
func NewLocatorWithStrategies(strategies ...Strategy) *Locator {
	return &Locator{strategies: strategies}
}

// Locate returns the path of the shader compiler, trying each strategy in
// order. The result is cached for the lifetime of the Locator.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != "" {
		return l.cached, nil
	}

	logger := ctxlog.FromContext(ctx)
	var tried []string
	for _, s := range l.strategies {
		tried = append(tried, s.Name())
		path, err := s.Locate(ctx)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				logger.Debug("Toolchain strategy missed.", "strategy", s.Name())
				continue
			}
			return "", fmt.Errorf("toolchain strategy %s: %w", s.Name(), err)
		}
		logger.Debug("Toolchain located.", "strategy", s.Name(), "path", path)
		l.cached = path
		return path, nil
	}

	return "", fmt.Errorf("%w (tried: %s)", ErrNotFound, strings.Join(tried, ", "))
}
