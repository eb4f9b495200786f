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

package testcases

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	single("two_triangles", 64, 64, Layer{
		Path: twoTriangles(18, 32, 46, 32, 10),
	}),
	single("overlapping_rect_nonzero", 64, 64, Layer{
		Path: addRectangle(rectangle(8, 8, 40, 40), 24, 24, 56, 56),
	}),
	single("overlapping_rect_evenodd", 64, 64, Layer{
		Path: addRectangle(rectangle(8, 8, 40, 40), 24, 24, 56, 56),
		Rule: EvenOdd,
	}),
	single("square_hole_nonzero", 64, 64, Layer{
		Path: addRectangleReversed(rectangle(8, 8, 56, 56), 20, 20, 44, 44),
	}),
	single("square_hole_same_winding", 64, 64, Layer{
		Path: addRectangle(rectangle(8, 8, 56, 56), 20, 20, 44, 44),
	}),
	single("ring", 64, 64, Layer{
		Path: ring(32, 32, 26, 14),
	}),
	single("many_small_shapes", 128, 128, Layer{
		Path: manySmallShapes(8, 8),
	}),
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := &path.Data{}
	for _, c := range [][2]float64{{cx1, cy1}, {cx2, cy2}} {
		p.MoveTo(pt(c[0], c[1]-size)).
			LineTo(pt(c[0]+size, c[1]+size)).
			LineTo(pt(c[0]-size, c[1]+size)).
			Close()
	}
	return p
}

// manySmallShapes builds a cols×rows grid of small diamonds, each in its
// own subpath.
func manySmallShapes(cols, rows int) *path.Data {
	p := &path.Data{}
	for j := range rows {
		for i := range cols {
			cx := 8 + 16*float64(i)
			cy := 8 + 16*float64(j)
			p.MoveTo(pt(cx, cy-6)).
				LineTo(pt(cx+6, cy)).
				LineTo(pt(cx, cy+6)).
				LineTo(pt(cx-6, cy)).
				Close()
		}
	}
	return p
}
