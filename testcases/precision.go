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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var precisionCases = []TestCase{
	single("subpixel_offset_00", 64, 64, Layer{Path: offsetRectangle(16, 16, 32, 32, 0)}),
	single("subpixel_offset_25", 64, 64, Layer{Path: offsetRectangle(16, 16, 32, 32, 0.25)}),
	single("subpixel_offset_50", 64, 64, Layer{Path: offsetRectangle(16, 16, 32, 32, 0.5)}),
	single("subpixel_offset_75", 64, 64, Layer{Path: offsetRectangle(16, 16, 32, 32, 0.75)}),
	single("thin_line_y_integer", 64, 64, Layer{
		Path:   polyline(10, 32, 54, 32),
		Stroke: &Stroke{Width: 1, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter},
	}),
	single("thin_line_y_half", 64, 64, Layer{
		Path:   polyline(10, 32.5, 54, 32.5),
		Stroke: &Stroke{Width: 1, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter},
	}),
	single("hairline_rect", 64, 64, Layer{Path: rectangle(10, 31.9, 54, 32.1)}),
	single("large_coord_translated", 64, 64, Layer{
		Path: rectangle(1e6-16, 1e6-16, 1e6+16, 1e6+16),
		CTM:  matrix.Translate(32-1e6, 32-1e6),
	}),
	single("float64_precision", 64, 64, Layer{
		Path: offsetRectangle(22, 22, 20.000000000000001, 20, 0.123456789012345),
	}),
}

// offsetRectangle builds a w×h rectangle at (x1, y1), shifted by offset
// in both directions.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}
