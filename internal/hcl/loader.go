package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/shadergridgo/internal/config"
	"github.com/vk/shadergridgo/internal/ctxlog"
	"github.com/vk/shadergridgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the manifest file at path, decodes it into the HCL schema, and
// translates it into the format-agnostic model with defaults applied.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// A missing manifest is not an error; every block has defaults.
			logger.Debug("Manifest not found, using defaults.", "path", path)
			model := &config.Model{}
			model.ApplyDefaults()
			return model, nil
		}
		return nil, fmt.Errorf("error accessing manifest %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var root schema.Manifest
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	model, err := l.translate(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	model.ApplyDefaults()

	logger.Debug("HCL loading complete.",
		"source_dirs", model.Shaders.SourceDirs,
		"output_dir", model.Shaders.OutputDir,
	)
	return model, nil
}
