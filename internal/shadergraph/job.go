package shadergraph

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stage identifies the pipeline stage a shader source targets.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
)

// StageForPath derives the stage from a source file's extension.
func StageForPath(path string) (Stage, error) {
	switch filepath.Ext(path) {
	case ".vert":
		return StageVertex, nil
	case ".frag":
		return StageFragment, nil
	default:
		return "", fmt.Errorf("cannot derive shader stage from %q", path)
	}
}

// Artifact suffixes. Cleaning removes exactly these classes and nothing else.
const (
	BinarySuffix   = ".spv"
	AssemblySuffix = ".spvasm"
	DepSuffix      = ".d"
)

// Job is one compilation unit: a single source producing a binary and a
// disassembly artifact that share one dependency record.
type Job struct {
	// Source is the authored shader file.
	Source string

	// Stage is derived from the source extension.
	Stage Stage

	// Binary, Assembly and DepRecord are the derived output paths, mirroring
	// the source's location relative to its source root.
	Binary    string
	Assembly  string
	DepRecord string
}

// NewJob derives a job for source found under sourceRoot, with outputs under
// outputDir.
func NewJob(source, sourceRoot, outputDir string) (*Job, error) {
	stage, err := StageForPath(source)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(sourceRoot, source)
	if err != nil {
		return nil, fmt.Errorf("deriving output path for %s: %w", source, err)
	}
	if strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("source %s escapes its root %s", source, sourceRoot)
	}
	out := filepath.Join(outputDir, rel)
	return &Job{
		Source:    source,
		Stage:     stage,
		Binary:    out + BinarySuffix,
		Assembly:  out + AssemblySuffix,
		DepRecord: out + DepSuffix,
	}, nil
}

// Name is a short identifier for logs and progress reporting.
func (j *Job) Name() string {
	return filepath.Base(j.Source)
}
