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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func strokeMask(p *path.Data, style StrokeStyle, w, h int) *Mask {
	l := newLayer().SetOutline(p).SetStroke(&style)
	return layerMask(l, w, h)
}

func hLine(x0, x1, y float64) *path.Data {
	return (&path.Data{}).MoveTo(vec.Vec2{X: x0, Y: y}).LineTo(vec.Vec2{X: x1, Y: y})
}

func TestStrokeHorizontalLine(t *testing.T) {
	m := strokeMask(hLine(10, 54, 32), StrokeStyle{Width: 8, Cap: graphics.LineCapButt}, 64, 64)

	// a band of height 8 around y=32
	for y := range 64 {
		want := float32(0)
		if y >= 28 && y < 36 {
			want = 1
		}
		if got := m.Opacity(30, y); !near(got, want) {
			t.Errorf("row %d: got %g, want %g", y, got, want)
		}
	}
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		cap        graphics.LineCapStyle
		first, end int // first and last fully covered column
	}{
		{graphics.LineCapButt, 10, 53},
		{graphics.LineCapSquare, 6, 57},
	}
	for _, c := range cases {
		m := strokeMask(hLine(10, 54, 32), StrokeStyle{Width: 8, Cap: c.cap}, 64, 64)
		for x := range 64 {
			want := float32(0)
			if x >= c.first && x <= c.end {
				want = 1
			}
			if got := m.Opacity(x, 32); !near(got, want) {
				t.Errorf("cap %v, column %d: got %g, want %g", c.cap, x, got, want)
			}
		}
	}

	m := strokeMask(hLine(10, 54, 32), StrokeStyle{Width: 8, Cap: graphics.LineCapRound}, 64, 64)
	if got := m.Opacity(7, 32); got < 0.99 {
		t.Errorf("round cap: pixel inside the cap has opacity %g", got)
	}
	if got := m.Opacity(5, 32); got != 0 {
		t.Errorf("round cap: pixel outside the cap has opacity %g", got)
	}
	if got := m.Opacity(6, 28); got > 0.5 {
		t.Errorf("round cap: corner pixel has opacity %g", got)
	}
}

func TestStrokeJoins(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 50}).
		LineTo(vec.Vec2{X: 32, Y: 14}).
		LineTo(vec.Vec2{X: 54, Y: 50})

	miter := strokeMask(corner, StrokeStyle{Width: 6, Join: graphics.LineJoinMiter}, 64, 64)
	bevel := strokeMask(corner, StrokeStyle{Width: 6, Join: graphics.LineJoinBevel}, 64, 64)
	round := strokeMask(corner, StrokeStyle{Width: 6, Join: graphics.LineJoinRound}, 64, 64)

	// The miter tip reaches up to y≈8.25, the other joins stay below y=11.
	if got := miter.Opacity(31, 10); got < 0.99 {
		t.Errorf("miter: got %g at the tip", got)
	}
	if got := bevel.Opacity(31, 10); got != 0 {
		t.Errorf("bevel: got %g above the corner", got)
	}
	if got := round.Opacity(31, 10); got > 0.01 {
		t.Errorf("round: got %g above the corner", got)
	}
	if got := round.Opacity(31, 12); got < 0.99 {
		t.Errorf("round: got %g inside the join", got)
	}

	// with a miter limit of 1.5, the join falls back to a bevel
	limited := strokeMask(corner, StrokeStyle{Width: 6, Join: graphics.LineJoinMiter, MiterLimit: 1.5}, 64, 64)
	if got := limited.Opacity(31, 10); got != 0 {
		t.Errorf("limited miter: got %g above the corner", got)
	}
}

func TestStrokeClosedContour(t *testing.T) {
	m := strokeMask(rectPath(14, 14, 50, 50), StrokeStyle{Width: 6, Join: graphics.LineJoinMiter}, 64, 64)
	cases := []struct {
		x, y int
		want float32
	}{
		{12, 30, 1},  // left side
		{30, 30, 0},  // inside the square
		{11, 11, 1},  // mitered corner
		{10, 30, 0},  // outside
		{48, 48, 1},  // inner corner
		{30, 52, 1},  // bottom side
		{30, 53, 0},  // below
		{17, 30, 0},  // just inside
		{16, 30, 1},  // inner edge
		{53, 30, 0},  // just outside
		{52, 30, 1},  // outer edge
		{30, 10, 0},  // above
		{30, 11, 1},  // top side
		{50, 11, 1},  // top right corner
		{52, 52, 1},  // bottom right corner
		{53, 53, 0},  // beyond the miter
		{46, 46, 0},  // inside, near the corner
		{14, 16, 1},  // centre line
		{20, 20, 0},  // inside
		{20, 14, 1},  // centre line
	}
	for _, c := range cases {
		if got := m.Opacity(c.x, c.y); !near(got, c.want) {
			t.Errorf("(%d, %d): got %g, want %g", c.x, c.y, got, c.want)
		}
	}
}

func TestStrokeDegenerate(t *testing.T) {
	dot := (&path.Data{}).MoveTo(vec.Vec2{X: 8, Y: 8}).LineTo(vec.Vec2{X: 8, Y: 8})

	round := strokeMask(dot, StrokeStyle{Width: 6, Cap: graphics.LineCapRound}, 16, 16)
	if got := round.Opacity(8, 8); got < 0.99 {
		t.Errorf("round dot: centre opacity %g", got)
	}

	butt := strokeMask(dot, StrokeStyle{Width: 6, Cap: graphics.LineCapButt}, 16, 16)
	if got := butt.Opacity(8, 8); got != 0 {
		t.Errorf("butt dot: centre opacity %g", got)
	}

	if flat := strokeOutline(nil, Flatten(hLine(0, 10, 5), 0, nil), &StrokeStyle{Width: 0}, FlattenTolerance); len(flat) != 0 {
		t.Errorf("zero width: got %d points", len(flat))
	}
}

func TestStrokeOrientation(t *testing.T) {
	// Contours traversed in either direction give the same result.
	fwd := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 28, Y: 4}).
		LineTo(vec.Vec2{X: 16, Y: 28})
	rev := (&path.Data{}).
		MoveTo(vec.Vec2{X: 16, Y: 28}).
		LineTo(vec.Vec2{X: 28, Y: 4}).
		LineTo(vec.Vec2{X: 4, Y: 4})

	style := StrokeStyle{Width: 3, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound}
	a := strokeMask(fwd, style, 32, 32)
	b := strokeMask(rev, style, 32, 32)
	for y := range 32 {
		for x := range 32 {
			if d := a.Opacity(x, y) - b.Opacity(x, y); d > 1e-4 || d < -1e-4 {
				t.Fatalf("(%d, %d): %g vs %g", x, y, a.Opacity(x, y), b.Opacity(x, y))
			}
		}
	}
}

func near(a, b float32) bool {
	const eps = 1e-4
	return a-b < eps && b-a < eps
}
