package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var curveCases = []TestCase{
	single("quadratic_shallow", 64, 64, Layer{
		Path: quadraticCurve(10, 40, 32, 30, 54, 40),
	}),
	single("quadratic_deep", 64, 64, Layer{
		Path: quadraticCurve(10, 54, 32, -10, 54, 54),
	}),
	single("quadratic_s_shape", 64, 64, Layer{
		Path: (&path.Data{}).
			MoveTo(pt(10, 32)).
			QuadTo(pt(21, 5), pt(32, 32)).
			QuadTo(pt(43, 59), pt(54, 32)).
			Close(),
	}),
	single("quadratic_degenerate", 64, 64, Layer{
		Path: quadraticCurve(10, 32, 10, 32, 54, 20),
	}),
	single("quadratic_stroked", 64, 64, Layer{
		Path:   quadraticCurveOpen(10, 50, 32, 0, 54, 50),
		Stroke: &Stroke{Width: 4, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound},
	}),
	single("cubic_shallow", 64, 64, Layer{
		Path: cubicCurve(10, 40, 25, 30, 39, 30, 54, 40),
	}),
	single("cubic_scurve", 64, 64, Layer{
		Path: cubicCurve(10, 32, 25, 0, 39, 64, 54, 32),
	}),
	single("cubic_loop", 64, 64, Layer{
		Path: cubicCurve(10, 50, 70, 0, -6, 0, 54, 50),
	}),
	single("cubic_loop_evenodd", 64, 64, Layer{
		Path: cubicCurve(10, 50, 70, 0, -6, 0, 54, 50),
		Rule: EvenOdd,
	}),
	single("cubic_cusp", 64, 64, Layer{
		Path: cubicCurve(10, 50, 54, 10, 10, 10, 54, 50),
	}),
	single("cubic_nearly_straight", 64, 64, Layer{
		Path: cubicCurve(10, 32, 25, 32.1, 39, 31.9, 54, 32),
	}),
	single("cubic_stroked", 64, 64, Layer{
		Path:   cubicCurveOpen(10, 50, 20, 0, 44, 64, 54, 14),
		Stroke: &Stroke{Width: 3, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter},
	}),
}
