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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func closeTo(a, b vec.Vec2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestTransformApply(t *testing.T) {
	cases := []struct {
		name string
		t    Transform
		in   vec.Vec2
		out  vec.Vec2
	}{
		{"identity", Identity(), vec.Vec2{X: 3, Y: -4}, vec.Vec2{X: 3, Y: -4}},
		{"translate", Translate(vec.Vec2{X: 1, Y: 2}), vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 4, Y: 6}},
		{"scale", Scale(2, -1), vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 4, Y: -2}},
		{"rotate", Rotate(math.Pi / 2), vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{"translate then scale", Translate(vec.Vec2{X: 1, Y: 2}).Chain(Scale(2, 3)), vec.Vec2{X: -2, Y: 2}, vec.Vec2{X: -2, Y: 12}},
		{"rotate then translate", Rotate(math.Pi / 2).Chain(Translate(vec.Vec2{X: 0, Y: 14})), vec.Vec2{X: -2, Y: 2}, vec.Vec2{X: -2, Y: 12}},
		{"chain order", Translate(vec.Vec2{X: 1, Y: 0}).Chain(Scale(3, 3)), vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 6, Y: 3}},
	}
	for _, c := range cases {
		if got := c.t.Apply(c.in); !closeTo(got, c.out) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.out)
		}
	}
}

func TestTransformLinear(t *testing.T) {
	tr := Scale(2, 3).Chain(Translate(vec.Vec2{X: 10, Y: 10}))
	got := tr.Linear(vec.Vec2{X: 1, Y: 1})
	if !closeTo(got, vec.Vec2{X: 2, Y: 3}) {
		t.Errorf("got %v, want (2, 3)", got)
	}
}

func TestFromMatrix(t *testing.T) {
	m := matrix.Matrix{1, 2, 3, 4, 5, 6}
	if got := FromMatrix(m).Matrix(); got != m {
		t.Errorf("round trip: got %v, want %v", got, m)
	}

	// x' = a*x + c*y + e, y' = b*x + d*y + f
	got := FromMatrix(m).Apply(vec.Vec2{X: 1, Y: 1})
	if !closeTo(got, vec.Vec2{X: 9, Y: 12}) {
		t.Errorf("apply: got %v, want (9, 12)", got)
	}

	got = FromMatrix(matrix.Translate(3, 4)).Apply(vec.Vec2{X: 1, Y: 1})
	if !closeTo(got, vec.Vec2{X: 4, Y: 5}) {
		t.Errorf("translate: got %v, want (4, 5)", got)
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() is not the identity")
	}
	if Translate(vec.Vec2{X: 1}).IsIdentity() {
		t.Error("translation reported as identity")
	}
}

func TestIsRigid(t *testing.T) {
	cases := []struct {
		name string
		t    Transform
		want bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(vec.Vec2{X: 5, Y: -3}), true},
		{"rotate", Rotate(0.3), true},
		{"rotate and translate", Rotate(1).Chain(Translate(vec.Vec2{X: 1, Y: 1})), true},
		{"scale", Scale(2, 2), false},
		{"mirror", Scale(-1, 1), true},
		{"mirror matrix", FromMatrix(matrix.Matrix{-1, 0, 0, 1, 10, 0}), true},
		{"rotated mirror", Rotate(0.7).Chain(Scale(1, -1)), true},
		{"mirror and scale", Scale(-2, 1), false},
		{"shear", FromMatrix(matrix.Matrix{1, 0, 0.5, 1, 0, 0}), false},
	}
	for _, c := range cases {
		if got := c.t.isRigid(); got != c.want {
			t.Errorf("%s: got %t, want %t", c.name, got, c.want)
		}
	}
}
