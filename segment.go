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

	"seehuhn.de/go/geom/vec"
)

// LinearRelation describes the linear map k ↦ Slope·k + Offset.
type LinearRelation struct {
	Slope  float64
	Offset float64 // value at k = 0
}

// At evaluates the relation at k.
func (l LinearRelation) At(k float64) float64 {
	return l.Slope*k + l.Offset
}

// LineSegment is a line in device coordinates, prepared for
// rasterization.  The segment is oriented so that y increases from P0
// to P0 + (DeltaX, DeltaY); Direction records the original orientation.
//
// The points of the segment are P0 + t·(DeltaX, DeltaY) for t in [0, 1].
// TX and TY give the parameter t at integer grid lines: the segment
// meets the vertical line x = round(P0.X) + k at t = TX.At(k), and the
// horizontal line y = round(P0.Y) + k at t = TY.At(k).
type LineSegment struct {
	P0             vec.Vec2
	DeltaX, DeltaY float64
	Direction      float32 // +1 if the original segment pointed downwards, -1 otherwise

	TX, TY LinearRelation
}

// newLineSegment prepares the line from p0 to p1 for rasterization.
// The caller must ensure that p0.Y != p1.Y.
func newLineSegment(p0, p1 vec.Vec2) LineSegment {
	direction := float32(1)
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
		direction = -1
	}

	deltaX := p1.X - p0.X
	deltaY := p1.Y - p0.Y

	seg := LineSegment{
		P0:        p0,
		DeltaX:    deltaX,
		DeltaY:    deltaY,
		Direction: direction,
		TY: LinearRelation{
			Slope:  1 / deltaY,
			Offset: (math.Round(p0.Y) - p0.Y) / deltaY,
		},
	}
	if deltaX != 0 {
		seg.TX = LinearRelation{
			Slope:  1 / deltaX,
			Offset: (math.Round(p0.X) - p0.X) / deltaX,
		}
	}
	return seg
}

// End returns the end point of the segment, i.e. the point with the
// larger y-coordinate.
func (s *LineSegment) End() vec.Vec2 {
	return vec.Vec2{X: s.P0.X + s.DeltaX, Y: s.P0.Y + s.DeltaY}
}

// xAtRow returns the x-coordinate where the segment crosses the
// horizontal grid line y.  Values of y outside the segment are clamped
// to the segment end points.
func (s *LineSegment) xAtRow(y float64) float64 {
	if y <= s.P0.Y {
		return s.P0.X
	}
	if y >= s.P0.Y+s.DeltaY {
		return s.P0.X + s.DeltaX
	}
	t := s.TY.At(y - math.Round(s.P0.Y))
	return s.P0.X + t*s.DeltaX
}

// appendLineSegments transforms the flattened outline and appends all
// line segments which can contribute to a width×height viewport to dst.
func appendLineSegments(dst []LineSegment, flat []FlatPoint, t Transform, width, height int) []LineSegment {
	w := float64(width)
	h := float64(height)

	for i := 1; i < len(flat); i++ {
		// skip the jump between two contours
		if !flat[i].Connected {
			continue
		}

		p0 := t.Apply(flat[i-1].Coords)
		p1 := t.Apply(flat[i].Coords)

		// horizontal lines do not contribute to coverage
		if p0.Y == p1.Y {
			continue
		}
		if lineIsOutsideViewport(p0, p1, w, h) {
			continue
		}

		dst = append(dst, newLineSegment(p0, p1))
	}
	return dst
}

// computeLineSegments collects the line segments of all enabled layers.
func computeLineSegments(layers []*Layer, width, height int) []LineSegment {
	var segs []LineSegment
	for _, l := range layers {
		if !l.enabled {
			continue
		}
		segs = appendLayerSegments(segs, l, width, height)
	}
	return segs
}

// appendLayerSegments flattens the outline of l if needed, and appends
// its line segments for a width×height viewport to dst.
func appendLayerSegments(dst []LineSegment, l *Layer, width, height int) []LineSegment {
	l.FlattenIfNecessary()
	return appendLineSegments(dst, l.flat, l.transform, width, height)
}

// lineIsOutsideViewport reports whether the line from p0 to p1 can be
// skipped.  The test is conservative: it never flags a line which touches
// the viewport, but some lines outside the viewport are not flagged, for
// example a diagonal passing the top-right corner:
//
//	           x (p0)
//	             \
//	┌──────────┐  \
//	│ viewport │   \
//	└──────────┘    x (p1)
//
// Lines to the left of the viewport are never skipped, since their
// accumulated coverage carries over into the visible columns.
func lineIsOutsideViewport(p0, p1 vec.Vec2, width, height float64) bool {
	return p0.Y < 0 && p1.Y < 0 || // above
		width < p0.X && width < p1.X || // right
		height < p0.Y && height < p1.Y // below
}
