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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FlatPoint is a vertex of a flattened outline.
type FlatPoint struct {
	Coords vec.Vec2

	// Connected is true if the point continues the contour of the
	// previous point.  A false value starts a new contour, and the line
	// from the previous point must not be drawn.
	Connected bool
}

// Flatten approximates the path p by straight line segments and appends
// the resulting vertices to dst.  The tolerance bounds the distance
// between the curves and their approximation, in path coordinates.
func Flatten(p *path.Data, tolerance float64, dst []FlatPoint) []FlatPoint {
	if p == nil {
		return dst
	}
	if tolerance <= 0 {
		tolerance = FlattenTolerance
	}

	var current vec.Vec2 // current point
	var start vec.Vec2   // start of the current contour
	open := false        // whether start has been emitted

	lineTo := func(to vec.Vec2) {
		if !open {
			dst = append(dst, FlatPoint{Coords: current})
			start = current
			open = true
		}
		dst = append(dst, FlatPoint{Coords: to, Connected: true})
		current = to
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			open = false
			coordIdx++

		case path.CmdLineTo:
			lineTo(p.Coords[coordIdx])
			coordIdx++

		case path.CmdQuadTo:
			flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], tolerance, lineTo)
			coordIdx += 2

		case path.CmdCubeTo:
			flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], tolerance, lineTo)
			coordIdx += 3

		case path.CmdClose:
			if open && current != start {
				lineTo(start)
			}
			current = start
			open = false
		}
	}
	return dst
}

// flattenQuadratic calls lineTo for the end point of every line segment
// approximating the quadratic Bézier curve p0, p1, p2.
func flattenQuadratic(p0, p1, p2 vec.Vec2, tolerance float64, lineTo func(vec.Vec2)) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > tolerance {
		n = int(math.Ceil(math.Sqrt(errLen / tolerance)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		lineTo(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic calls lineTo for the end point of every line segment
// approximating the cubic Bézier curve p0, p1, p2, p3.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, tolerance float64, lineTo func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * tolerance)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		lineTo(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

// bounds returns the bounding box of the points in flat after applying
// the transformation t.  The second return value is false if flat is
// empty.
func bounds(flat []FlatPoint, t Transform) (rect.Rect, bool) {
	if len(flat) == 0 {
		return rect.Rect{}, false
	}
	p := t.Apply(flat[0].Coords)
	b := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for _, fp := range flat[1:] {
		p := t.Apply(fp.Coords)
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b, true
}
