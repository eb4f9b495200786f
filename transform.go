// seehuhn.de/go/paint - layered 2D compositing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package paint

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform is a 2D affine transformation, stored as the 2×3 matrix
//
//	[a b c]
//	[d e f]
//
// which maps (x, y) to (a·x + b·y + c, d·x + e·y + f).
// The zero value is not the identity; use [Identity].
type Transform [2][3]float64

// Identity returns the transformation which leaves all points unchanged.
func Identity() Transform {
	return Transform{{1, 0, 0}, {0, 1, 0}}
}

// Translate returns a transformation which shifts every point by v.
func Translate(v vec.Vec2) Transform {
	return Transform{{1, 0, v.X}, {0, 1, v.Y}}
}

// Scale returns a transformation which scales by sx along the x-axis
// and by sy along the y-axis.
func Scale(sx, sy float64) Transform {
	return Transform{{sx, 0, 0}, {0, sy, 0}}
}

// Rotate returns a transformation which rotates points around the origin
// by the given angle in radians.  Positive angles turn the x-axis towards
// the y-axis.
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{{cos, -sin, 0}, {sin, cos, 0}}
}

// FromMatrix converts a PDF-style matrix [a b c d e f], which maps (x, y)
// to (a·x + c·y + e, b·x + d·y + f), to a Transform.
func FromMatrix(m matrix.Matrix) Transform {
	return Transform{{m[0], m[2], m[4]}, {m[1], m[3], m[5]}}
}

// Matrix returns t in the PDF-style representation used by
// seehuhn.de/go/geom/matrix.
func (t Transform) Matrix() matrix.Matrix {
	return matrix.Matrix{t[0][0], t[1][0], t[0][1], t[1][1], t[0][2], t[1][2]}
}

// Apply transforms the point p.
func (t Transform) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t[0][0]*p.X + t[0][1]*p.Y + t[0][2],
		Y: t[1][0]*p.X + t[1][1]*p.Y + t[1][2],
	}
}

// Linear applies only the 2×2 linear part of t to the vector v.
func (t Transform) Linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t[0][0]*v.X + t[0][1]*v.Y,
		Y: t[1][0]*v.X + t[1][1]*v.Y,
	}
}

// Chain returns the transformation which applies t first and then other,
// so that t.Chain(other).Apply(p) == other.Apply(t.Apply(p)).
func (t Transform) Chain(other Transform) Transform {
	o := other
	return Transform{
		{
			o[0][0]*t[0][0] + o[0][1]*t[1][0],
			o[0][0]*t[0][1] + o[0][1]*t[1][1],
			o[0][0]*t[0][2] + o[0][1]*t[1][2] + o[0][2],
		},
		{
			o[1][0]*t[0][0] + o[1][1]*t[1][0],
			o[1][0]*t[0][1] + o[1][1]*t[1][1],
			o[1][0]*t[0][2] + o[1][1]*t[1][2] + o[1][2],
		},
	}
}

// IsIdentity reports whether t leaves all points unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// isRigid reports whether t preserves distances, so that a polyline
// flattened before applying t stays within tolerance afterwards.
// This holds for rotations, reflections and translations, i.e. whenever
// the columns of the linear part are orthonormal.
func (t Transform) isRigid() bool {
	const eps = 1e-12
	a, b := t[0][0], t[0][1]
	c, d := t[1][0], t[1][1]
	return math.Abs(a*a+c*c-1) < eps &&
		math.Abs(b*b+d*d-1) < eps &&
		math.Abs(a*b+c*d) < eps
}
