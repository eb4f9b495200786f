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
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/paint/testcases"
)

type namedCase struct {
	name string
	tc   testcases.TestCase
}

// allCases returns all scenes in a fixed order.
func allCases() []namedCase {
	var res []namedCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			res = append(res, namedCase{category + "_" + tc.Name, tc})
		}
	}
	return res
}

// buildComposition converts a scene into a composition.
func buildComposition(tc testcases.TestCase, opts ...Option) *Composition {
	c := NewComposition(opts...)
	for _, tl := range tc.Layers {
		l := c.Layer(tl.Index).
			SetOutline(tl.Path).
			SetSource(Solid(Color(tl.Color)))
		if tl.Rule == testcases.EvenOdd {
			l.SetFillRule(EvenOdd)
		}
		if tl.Stroke != nil {
			l.SetStroke(&StrokeStyle{
				Width:      tl.Stroke.Width,
				Cap:        tl.Stroke.Cap,
				Join:       tl.Stroke.Join,
				MiterLimit: tl.Stroke.MiterLimit,
			})
		}
		if tl.CTM != (matrix.Matrix{}) {
			l.Concat(FromMatrix(tl.CTM))
		}
	}
	return c
}

// renderScene paints a scene into a new buffer.
func renderScene(tc testcases.TestCase) (*Buffer, error) {
	buf := NewBuffer(tc.Width, tc.Height)
	buf.Clear(Color(tc.Background))
	err := buildComposition(tc).RenderTo(buf)
	return buf, err
}

// layerContours returns the flattened outline of l in device space, one
// slice of vertices per contour.
func layerContours(l *Layer) [][]vec.Vec2 {
	l.FlattenIfNecessary()
	var res [][]vec.Vec2
	for _, fp := range l.flat {
		p := l.transform.Apply(fp.Coords)
		if !fp.Connected || len(res) == 0 {
			res = append(res, []vec.Vec2{p})
			continue
		}
		res[len(res)-1] = append(res[len(res)-1], p)
	}
	return res
}

// layerMask rasterizes a single layer into a width×height mask.
func layerMask(l *Layer, width, height int) *Mask {
	segs := appendLayerSegments(nil, l, width, height)
	r := NewRasterizer(width, height)
	r.Rule = l.rule
	for i := range segs {
		r.AddSegment(&segs[i])
	}
	return r.Mask()
}
