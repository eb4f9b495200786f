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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	// uniform scaling
	single("scale_2x", 64, 64, Layer{
		Path: rectangle(-8, -8, 8, 8),
		CTM:  matrix.Scale(2, 2).Translate(32, 32),
	}),
	single("scale_half", 64, 64, Layer{
		Path: fivePointStar(0, 0, 50),
		CTM:  matrix.Scale(0.5, 0.5).Translate(32, 32),
	}),
	single("scale_10x", 64, 64, Layer{
		Path: triangle(-2, 2, 0, -2, 2, 2),
		CTM:  matrix.Scale(10, 10).Translate(32, 32),
	}),

	// rotation
	single("rotate_45deg", 64, 64, Layer{
		Path: rectangle(-16, -16, 16, 16),
		CTM:  matrix.RotateDeg(45).Translate(32, 32),
	}),
	single("rotate_90deg", 64, 64, Layer{
		Path: triangle(-20, 15, 0, -15, 20, 15),
		CTM:  matrix.RotateDeg(90).Translate(32, 32),
	}),
	single("rotate_5deg", 64, 64, Layer{
		Path: rectangle(-20, -10, 20, 10),
		CTM:  matrix.RotateDeg(5).Translate(32, 32),
	}),

	// non-uniform scaling
	single("scale_2x_1y", 128, 64, Layer{
		Path: rectangle(-16, -16, 16, 16),
		CTM:  matrix.Scale(2, 1).Translate(64, 32),
	}),
	single("circle_to_ellipse", 128, 64, Layer{
		Path: circle(0, 0, 24),
		CTM:  matrix.Scale(2, 1).Translate(64, 32),
	}),

	// shear
	single("shear_horizontal", 64, 64, Layer{
		Path: rectangle(-16, -16, 16, 16),
		CTM:  matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	}),
	single("shear_and_rotate", 64, 64, Layer{
		Path: rectangle(-16, -16, 16, 16),
		CTM:  matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	}),

	// transformed strokes
	single("round_cap_nonuniform", 128, 64, Layer{
		Path: polyline(-20, 0, 20, 0),
		CTM:  matrix.Scale(2, 1).Translate(64, 32),
		Stroke: &Stroke{
			Width: 10,
			Cap:   graphics.LineCapRound,
			Join:  graphics.LineJoinRound,
		},
	}),
	single("round_join_rotated", 64, 64, Layer{
		Path: polyline(-20, 10, 0, -10, 20, 10),
		CTM:  matrix.RotateDeg(30).Translate(32, 32),
		Stroke: &Stroke{
			Width: 6,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinRound,
		},
	}),
}
