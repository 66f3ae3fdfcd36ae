package render

import (
	"errors"
	"fmt"
)

// MaxSegments is the largest grid whose vertices fit 16-bit indices.
const MaxSegments = 255

// ErrMeshTooLarge is returned when a grid cannot be indexed with uint16.
var ErrMeshTooLarge = errors.New("render: mesh too large")

// Triangulate returns two triangles per grid cell in back-to-front order for a
// camera on the +z side: row 0 (z = -size/2) is emitted first. Without a depth
// buffer this ordering lets nearer cells overdraw farther ones.
func Triangulate(segments int) ([]uint16, error) {
	if segments <= 0 || segments > MaxSegments {
		return nil, fmt.Errorf("%w: %d segments (max %d)", ErrMeshTooLarge, segments, MaxSegments)
	}
	stride := segments + 1
	out := make([]uint16, 0, segments*segments*6)
	for z := 0; z < segments; z++ {
		for x := 0; x < segments; x++ {
			i00 := uint16(z*stride + x)
			i10 := i00 + 1
			i01 := i00 + uint16(stride)
			i11 := i01 + 1
			out = append(out, i00, i01, i10, i10, i01, i11)
		}
	}
	return out, nil
}

// CullTriangles appends to dst the triangles of indices whose three vertices
// are all visible.
func CullTriangles(dst, indices []uint16, visible []bool) []uint16 {
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		if visible[a] && visible[b] && visible[c] {
			dst = append(dst, a, b, c)
		}
	}
	return dst
}
