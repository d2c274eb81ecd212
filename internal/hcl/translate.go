package hcl

import (
	"context"
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/vk/shadergridgo/internal/config"
	"github.com/vk/shadergridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translate converts the HCL-specific manifest schema into the agnostic model.
func (l *Loader) translate(ctx context.Context, root *schema.Manifest) (*config.Model, error) {
	model := &config.Model{}

	if root.Shaders != nil {
		model.Shaders = &config.Shaders{
			SourceDirs: root.Shaders.SourceDirs,
			OutputDir:  root.Shaders.OutputDir,
			Extensions: root.Shaders.Extensions,
		}
	}

	if root.Toolchain != nil {
		model.Toolchain = &config.Toolchain{
			Compiler:     root.Toolchain.Compiler,
			CacheDir:     root.Toolchain.CacheDir,
			SourceRepo:   root.Toolchain.SourceRepo,
			TrustedHosts: root.Toolchain.TrustedHosts,
			BuildSteps:   root.Toolchain.BuildSteps,
			BinPath:      root.Toolchain.BinPath,
		}
	}

	if root.Host != nil {
		model.Host = &config.Host{
			Binary:   root.Host.Binary,
			Package:  root.Host.Package,
			RunArgs:  root.Host.RunArgs,
			DebugEnv: root.Host.DebugEnv,
		}
	}

	if root.Contract != nil {
		light, err := translateLightDirection(root.Contract)
		if err != nil {
			return nil, err
		}
		model.Contract = &config.Contract{LightDirection: light}
	}

	return model, nil
}

// translateLightDirection evaluates the light_direction expression into a
// three-component vector. A zero vector is rejected because the vertex stage
// normalizes it.
func translateLightDirection(c *schema.Contract) (math32.Vector3, error) {
	var zero math32.Vector3

	if c.LightDirection == nil {
		return zero, nil
	}
	val, diags := c.LightDirection.Value(nil)
	if diags.HasErrors() {
		return zero, fmt.Errorf("invalid light_direction: %w", diags)
	}
	if val.IsNull() {
		return zero, nil
	}

	val, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return zero, fmt.Errorf("light_direction must be a list of numbers: %w", err)
	}

	var comps []float64
	if err := gocty.FromCtyValue(val, &comps); err != nil {
		return zero, fmt.Errorf("light_direction: %w", err)
	}
	if len(comps) != 3 {
		return zero, fmt.Errorf("light_direction must have exactly 3 components, got %d", len(comps))
	}

	light := math32.Vec3(float32(comps[0]), float32(comps[1]), float32(comps[2]))
	if light == zero {
		return zero, fmt.Errorf("light_direction must not be the zero vector")
	}
	return light, nil
}
