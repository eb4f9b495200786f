package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path, traversed clockwise in y-down
// coordinates.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return addRectangle(&path.Data{}, x1, y1, x2, y2)
}

func addRectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// addRectangleReversed adds a rectangle traversed in the opposite
// direction to addRectangle.
func addRectangleReversed(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x1, y2)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x2, y1)).
		Close()
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	// visit every second vertex: 0, 2, 4, 1, 3
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.Close()
}

// circle builds a circle from four cubic Bézier arcs.
func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r, false)
}

// addCircle adds a circle to p.  If reverse is set, the circle is
// traversed counter-clockwise.
func addCircle(p *path.Data, cx, cy, r float64, reverse bool) *path.Data {
	const k = 0.5522847498 // 4/3 * (sqrt(2) - 1)
	s := 1.0
	if reverse {
		s = -1
	}
	kr := k * r
	p.MoveTo(pt(cx+r, cy))
	p.CubeTo(pt(cx+r, cy+s*kr), pt(cx+kr, cy+s*r), pt(cx, cy+s*r))
	p.CubeTo(pt(cx-kr, cy+s*r), pt(cx-r, cy+s*kr), pt(cx-r, cy))
	p.CubeTo(pt(cx-r, cy-s*kr), pt(cx-kr, cy-s*r), pt(cx, cy-s*r))
	p.CubeTo(pt(cx+kr, cy-s*r), pt(cx+r, cy-s*kr), pt(cx+r, cy))
	return p.Close()
}

// ring builds an annulus.  The inner circle is traversed in the
// opposite direction, so that the hole is empty under both fill rules.
func ring(cx, cy, rOuter, rInner float64) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, rOuter, false)
	return addCircle(p, cx, cy, rInner, true)
}

// polyline builds an open path through the given points, given as
// x, y pairs.
func polyline(coords ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p.LineTo(pt(coords[i], coords[i+1]))
	}
	return p
}

// quadraticCurve builds a closed shape with a quadratic Bézier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// quadraticCurveOpen builds an open path with a quadratic Bézier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds a closed shape with a cubic Bézier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// cubicCurveOpen builds an open path with a cubic Bézier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}
