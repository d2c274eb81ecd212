// Package depfile parses Makefile-style dependency records (.d files) as
// emitted by shader compilers: a target, a colon, and a backslash-continued
// list of prerequisite paths.
package depfile

import (
	"fmt"
	"os"
	"strings"
)

// Parse reads a .d file and returns the prerequisite paths of its first
// target. Duplicate entries are collapsed, order is preserved.
func Parse(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	deps, err := parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return deps, nil
}

func parse(content string) ([]string, error) {
	// Join continuation lines first; a trailing backslash splices lines.
	content = strings.ReplaceAll(content, "\\\r\n", " ")
	content = strings.ReplaceAll(content, "\\\n", " ")

	// Only the first rule matters; compilers emit exactly one.
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		content = content[:idx]
	}

	colon := strings.Index(content, ": ")
	if colon < 0 {
		// A bare "target:" with no prerequisites is still a valid record.
		trimmed := strings.TrimSpace(content)
		if strings.HasSuffix(trimmed, ":") {
			return nil, nil
		}
		return nil, fmt.Errorf("malformed dependency record: no target separator")
	}

	var deps []string
	seen := make(map[string]struct{})
	for _, field := range strings.Fields(content[colon+2:]) {
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		deps = append(deps, field)
	}
	return deps, nil
}
