package math

import "math"

// Mat4 is a 4x4 matrix stored column by column, the layout OpenGL uploads
// without transposing. The element at row r, column c is m[c*4+r].
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Scale(1, 1, 1)
}

// Perspective returns a right-handed projection that maps the view depth
// range [near, far] to [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// Ortho returns an orthographic projection of the given box.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	return m
}

// LookAt returns the view matrix of an eye looking at center.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	m := Identity()
	for i, axis := range [3]Vec3{s, u, f.Scale(-1)} {
		m[i], m[4+i], m[8+i] = axis.X, axis.Y, axis.Z
		m[12+i] = -axis.Dot(eye)
	}
	return m
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = x, y, z, 1
	return m
}

// rotation turns axis a toward axis b by angle radians.
func rotation(a, b int, angle float32) Mat4 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)

	m := Identity()
	m[a*4+a], m[a*4+b] = c, s
	m[b*4+a], m[b*4+b] = -s, c
	return m
}

// RotateX rotates by angle radians around X.
func RotateX(angle float32) Mat4 { return rotation(1, 2, angle) }

// RotateY rotates by angle radians around Y.
func RotateY(angle float32) Mat4 { return rotation(2, 0, angle) }

// RotateZ rotates by angle radians around Z.
func RotateZ(angle float32) Mat4 { return rotation(0, 1, angle) }

// Mul returns m * n, so n is applied first.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint applies m to the point p, dividing by w when the matrix
// is projective.
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	var v [4]float32
	for r := range v {
		v[r] = m[r]*p[0] + m[4+r]*p[1] + m[8+r]*p[2] + m[12+r]
	}
	if w := v[3]; w != 0 && w != 1 {
		return [3]float32{v[0] / w, v[1] / w, v[2] / w}
	}
	return [3]float32{v[0], v[1], v[2]}
}

// TransformDirection applies the linear part of m to d.
func (m Mat4) TransformDirection(d [3]float32) [3]float32 {
	var v [3]float32
	for r := range v {
		v[r] = m[r]*d[0] + m[4+r]*d[1] + m[8+r]*d[2]
	}
	return v
}

// WithoutTranslation keeps the upper-left 3x3 block and resets the rest to
// identity. Applied to a view matrix it gives the skybox view, which follows
// camera rotation only.
func (m Mat4) WithoutTranslation() Mat4 {
	m[3], m[7], m[11] = 0, 0, 0
	m[12], m[13], m[14], m[15] = 0, 0, 0, 1
	return m
}

// TRS composes translate * rotX * rotY * rotZ * scale. Angles are in radians.
func TRS(t Vec3, rx, ry, rz float32, s Vec3) Mat4 {
	return Translate(t.X, t.Y, t.Z).
		Mul(RotateX(rx)).
		Mul(RotateY(ry)).
		Mul(RotateZ(rz)).
		Mul(Scale(s.X, s.Y, s.Z))
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		d := m[i] - other[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
