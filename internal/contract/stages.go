package contract

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// MinLightIntensity is the ambient floor of the diffuse term.
const MinLightIntensity = 0.2

// paletteRamp is the grayscale ramp cycled through by primitive index in
// indexed mode.
var paletteRamp = [4]float32{0.1, 0.2, 0.3, 0.4}

// TextureSampler samples a filtered RGB texel at normalized coordinates.
type TextureSampler interface {
	Sample(uv math32.Vector2) math32.Vector3
}

// VertexInput is one invocation of the vertex stage.
type VertexInput struct {
	Vertex      Vertex
	VertexIndex uint32
}

// VertexOutput is what the vertex stage hands to rasterization. Index is
// flat-interpolated, so every fragment of a primitive sees the same value.
type VertexOutput struct {
	ClipPosition math32.Vector4
	Color        math32.Vector3
	TexCoord     math32.Vector2
	Index        uint32
}

// FragmentInput is one invocation of the fragment stage, after interpolation.
type FragmentInput struct {
	Color    math32.Vector3
	TexCoord math32.Vector2
	Index    uint32
}

// VertexStage is the CPU reference of the vertex shader. It transforms the
// position to clip space, computes a clamped diffuse term against lightDir,
// and derives the per-primitive index from the vertex index.
//
// The model-space position doubles as the surface normal, which holds for a
// unit sphere centered at the origin.
func VertexStage(u *UniformBlock, lightDir math32.Vector3, in VertexInput) (VertexOutput, error) {
	var mv, mvp math32.Matrix4
	mv.MulMatrices(&u.View, &u.Model)
	mvp.MulMatrices(&u.Projection, &mv)

	p := in.Vertex.Position
	clip := math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(&mvp)

	inv, err := u.Model.Inverse()
	if err != nil {
		return VertexOutput{}, fmt.Errorf("model matrix not invertible: %w", err)
	}
	normal := mulTransposedUpper3(inv, p).Normal()

	intensity := math32.Clamp(normal.Dot(lightDir.Normal()), MinLightIntensity, 1)
	return VertexOutput{
		ClipPosition: clip,
		Color:        in.Vertex.Color.MulScalar(intensity),
		TexCoord:     in.Vertex.TexCoord,
		Index:        in.VertexIndex / 3,
	}, nil
}

// FragmentStage is the CPU reference of the fragment shader. The mode must
// have been validated at the host boundary; an unspecified mode is an error
// here, never a silent default.
func FragmentStage(pc PushConstants, tex TextureSampler, in FragmentInput) (math32.Vector3, error) {
	switch pc.ColorMode {
	case ColorModeIndexed:
		g := paletteRamp[in.Index%uint32(len(paletteRamp))]
		return math32.Vec3(g, g, g), nil
	case ColorModeLitTextured:
		return tex.Sample(in.TexCoord).Mul(in.Color), nil
	}
	return math32.Vector3{}, fmt.Errorf("%w: %d", ErrUnspecifiedColorMode, uint32(pc.ColorMode))
}

// mulTransposedUpper3 applies the transposed upper 3x3 of m to v, which is
// how normals go through an inverse model matrix. Matrix4 is column-major,
// so m[i*4+j] addresses row j of column i.
func mulTransposedUpper3(m *math32.Matrix4, v math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		m[0]*v.X+m[1]*v.Y+m[2]*v.Z,
		m[4]*v.X+m[5]*v.Y+m[6]*v.Z,
		m[8]*v.X+m[9]*v.Y+m[10]*v.Z,
	)
}
