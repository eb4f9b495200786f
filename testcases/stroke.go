package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// stroked returns a single-layer scene which strokes p.
func stroked(name string, p *path.Data, width float64, lc graphics.LineCapStyle, lj graphics.LineJoinStyle) TestCase {
	return single(name, 64, 64, Layer{
		Path: p,
		Stroke: &Stroke{
			Width:      width,
			Cap:        lc,
			Join:       lj,
			MiterLimit: 10,
		},
	})
}

var strokeCases = []TestCase{
	stroked("line_butt", polyline(10, 32, 54, 32), 8, graphics.LineCapButt, graphics.LineJoinMiter),
	stroked("line_round", polyline(10, 32, 54, 32), 8, graphics.LineCapRound, graphics.LineJoinMiter),
	stroked("line_square", polyline(10, 32, 54, 32), 8, graphics.LineCapSquare, graphics.LineJoinMiter),
	stroked("line_diagonal", polyline(10, 54, 54, 10), 5, graphics.LineCapButt, graphics.LineJoinMiter),
	stroked("corner_miter", polyline(10, 50, 32, 14, 54, 50), 6, graphics.LineCapButt, graphics.LineJoinMiter),
	stroked("corner_round", polyline(10, 50, 32, 14, 54, 50), 6, graphics.LineCapButt, graphics.LineJoinRound),
	stroked("corner_bevel", polyline(10, 50, 32, 14, 54, 50), 6, graphics.LineCapButt, graphics.LineJoinBevel),
	stroked("sharp_miter_limited", polyline(10, 50, 32, 40, 10, 30), 6, graphics.LineCapButt, graphics.LineJoinMiter),
	stroked("closed_square", rectangle(14, 14, 50, 50), 6, graphics.LineCapButt, graphics.LineJoinMiter),
	stroked("dot_round", polyline(32, 32, 32, 32), 12, graphics.LineCapRound, graphics.LineJoinRound),
}
