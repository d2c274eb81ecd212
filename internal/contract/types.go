package contract

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"cogentcore.org/core/math32"
)

// ColorMode selects the fragment shading path. The value crosses the host
// boundary as a push constant, so it is fixed-width.
type ColorMode uint32

const (
	// ColorModeIndexed shades each primitive with a grayscale ramp value
	// picked by primitive index.
	ColorModeIndexed ColorMode = 0

	// ColorModeLitTextured modulates the sampled texture color by the lit
	// vertex color.
	ColorModeLitTextured ColorMode = 1
)

// ErrUnspecifiedColorMode reports a color mode outside the defined set.
// Callers must not let such a value reach the GPU.
var ErrUnspecifiedColorMode = errors.New("unspecified color mode")

// Valid reports whether the mode is one of the defined shading paths.
func (m ColorMode) Valid() bool {
	return m == ColorModeIndexed || m == ColorModeLitTextured
}

func (m ColorMode) String() string {
	switch m {
	case ColorModeIndexed:
		return "indexed"
	case ColorModeLitTextured:
		return "lit-textured"
	}
	return fmt.Sprintf("ColorMode(%d)", uint32(m))
}

// Sizes of the blocks as laid out on the GPU, in bytes.
const (
	PushConstantsSize = 4
	UniformBlockSize  = 3 * 16 * 4
	VertexSize        = 32
)

// PushConstants is the fragment-stage push constant block.
type PushConstants struct {
	ColorMode ColorMode
}

// Validate rejects color modes outside the defined set.
func (p PushConstants) Validate() error {
	if !p.ColorMode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnspecifiedColorMode, uint32(p.ColorMode))
	}
	return nil
}

// Bytes returns the block in GPU byte order.
func (p PushConstants) Bytes() []byte {
	buf := make([]byte, 0, PushConstantsSize)
	return binary.LittleEndian.AppendUint32(buf, uint32(p.ColorMode))
}

// UniformBlock is the vertex-stage uniform buffer at binding 0: the three
// transform matrices, column-major, tightly packed. A mat4 is both 16-byte
// aligned and a multiple of 16 bytes, so this layout is valid std140 as-is.
type UniformBlock struct {
	Model      math32.Matrix4
	View       math32.Matrix4
	Projection math32.Matrix4
}

// Bytes returns the block in GPU byte order.
func (u *UniformBlock) Bytes() []byte {
	buf := make([]byte, 0, UniformBlockSize)
	for _, m := range []*math32.Matrix4{&u.Model, &u.View, &u.Projection} {
		for _, f := range m {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	return buf
}

// Vertex is one interleaved vertex as stored in the vertex buffer.
type Vertex struct {
	Position math32.Vector3
	Color    math32.Vector3
	TexCoord math32.Vector2
}
