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

// Package testcases defines named scenes which are shared by the tests,
// the benchmarks and the export tool.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is a scene made of one or more layers.
type TestCase struct {
	Name       string  // lowercase a-z and _ only
	Width      int     // canvas width in pixels
	Height     int     // canvas height in pixels
	Background uint32  // canvas color, packed as 0x00RRGGBB
	Layers     []Layer // the layers, in any order
}

// Layer describes one layer of a scene.
type Layer struct {
	Index  uint16        // paint order, larger indices paint on top
	Path   *path.Data    // the geometry to render
	Color  uint32        // fill color, packed as 0x00RRGGBB
	Rule   FillRule      // fill rule for the interior
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
	Stroke *Stroke       // if non-nil, the outline is stroked instead of filled
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
}

// Colors used by the scenes.
const (
	black uint32 = 0x000000
	white uint32 = 0xFFFFFF
	red   uint32 = 0xFF0000
	green uint32 = 0x00FF00
	blue  uint32 = 0x0000FF
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// single returns a white canvas with one black layer.
func single(name string, width, height int, l Layer) TestCase {
	l.Color = black
	return TestCase{
		Name:       name,
		Width:      width,
		Height:     height,
		Background: white,
		Layers:     []Layer{l},
	}
}
