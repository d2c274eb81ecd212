package contract

import "github.com/gogpu/gputypes"

// Attribute offsets within a Vertex, matching the interleaved buffer.
const (
	PositionOffset = 0
	ColorOffset    = 12
	TexCoordOffset = 24
)

// VertexLayout describes the single interleaved vertex buffer:
// position float32x3 at location 0, color float32x3 at location 1,
// texCoord float32x2 at location 2.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x3,
					Offset:         PositionOffset,
					ShaderLocation: 0,
				},
				{
					Format:         gputypes.VertexFormatFloat32x3,
					Offset:         ColorOffset,
					ShaderLocation: 1,
				},
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         TexCoordOffset,
					ShaderLocation: 2,
				},
			},
		},
	}
}

// BindGroupLayout describes descriptor set 0:
//
//	Binding 0: transform uniform block, vertex stage
//	Binding 1: combined image sampler, fragment stage
func BindGroupLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
			Sampler: &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// PushConstantVisibility is the stage the push constant block is declared in.
const PushConstantVisibility = gputypes.ShaderStageFragment
