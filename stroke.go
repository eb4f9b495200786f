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
	"seehuhn.de/go/pdf/graphics"
)

// StrokeStyle describes how the outline of a layer is stroked.
type StrokeStyle struct {
	// Width is the line width in outline coordinates.
	// Must be positive; otherwise nothing is painted.
	Width float64

	// Cap sets the style for the ends of open contours.
	Cap graphics.LineCapStyle

	// Join sets the style for corners.
	Join graphics.LineJoinStyle

	// MiterLimit caps the length of miter joins, relative to half the
	// line width.  Values below 1 select the default of 10.
	MiterLimit float64
}

// Numerical tolerances for the stroker.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	defaultMiterLimit = 10.0
)

// strokeOutline converts the contours in flat into polygons covering the
// stroked outline and appends them to dst.  All polygons are oriented
// the same way, so that their union is obtained with the nonzero rule.
func strokeOutline(dst, flat []FlatPoint, style *StrokeStyle, tolerance float64) []FlatPoint {
	d := style.Width / 2
	if !(d > 0) {
		return dst
	}
	s := stroker{
		dst:        dst,
		d:          d,
		cap:        style.Cap,
		join:       style.Join,
		miterLimit: style.MiterLimit,
		tolerance:  tolerance,
	}
	if s.miterLimit < 1 {
		s.miterLimit = defaultMiterLimit
	}

	start := 0
	for i := 1; i <= len(flat); i++ {
		if i == len(flat) || !flat[i].Connected {
			s.contour(flat[start:i])
			start = i
		}
	}
	return s.dst
}

type stroker struct {
	dst        []FlatPoint
	d          float64 // half the line width
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64
	tolerance  float64

	pts  []vec.Vec2 // vertices of the current contour
	poly []vec.Vec2 // scratch polygon
}

// contour strokes a single contour.
func (s *stroker) contour(flat []FlatPoint) {
	s.pts = s.pts[:0]
	for _, fp := range flat {
		if n := len(s.pts); n > 0 && s.pts[n-1].Sub(fp.Coords).Length() < zeroLengthThreshold {
			continue
		}
		s.pts = append(s.pts, fp.Coords)
	}
	pts := s.pts

	switch len(pts) {
	case 0:
		return
	case 1:
		// degenerate contour: only round caps leave a mark
		if s.cap == graphics.LineCapRound {
			s.addCircle(pts[0])
		}
		return
	}

	closed := len(pts) > 2 && pts[0].Sub(pts[len(pts)-1]).Length() < zeroLengthThreshold
	if closed {
		pts = pts[:len(pts)-1]
	}

	n := len(pts)
	numSegs := n - 1
	if closed {
		numSegs = n
	}
	for i := range numSegs {
		s.addSegment(pts[i], pts[(i+1)%n])
	}

	if closed {
		for i := range n {
			prev := pts[(i+n-1)%n]
			next := pts[(i+1)%n]
			s.addJoin(pts[i], unit(pts[i].Sub(prev)), unit(next.Sub(pts[i])))
		}
		return
	}

	for i := 1; i < n-1; i++ {
		s.addJoin(pts[i], unit(pts[i].Sub(pts[i-1])), unit(pts[i+1].Sub(pts[i])))
	}
	s.addCap(pts[0], unit(pts[0].Sub(pts[1])))
	s.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])))
}

// addSegment adds the rectangle covering the segment from a to b.
func (s *stroker) addSegment(a, b vec.Vec2) {
	t := unit(b.Sub(a))
	n := normal(t).Mul(s.d)
	s.poly = append(s.poly[:0], a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	s.emitPolygon()
}

// addJoin fills the gap on the outer side of the corner at p, where the
// direction changes from t1 to t2.
func (s *stroker) addJoin(p, t1, t2 vec.Vec2) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	cosTheta := t1.Dot(t2)
	if cross > -collinearityThreshold && cross < collinearityThreshold && cosTheta > 0 {
		return
	}

	if s.join == graphics.LineJoinRound {
		s.addCircle(p)
		return
	}

	// the outer side is opposite to the direction of the turn
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side)
	n2 := normal(t2).Mul(side)
	o1 := p.Add(n1.Mul(s.d))
	o2 := p.Add(n2.Mul(s.d))

	if s.join == graphics.LineJoinMiter {
		// miter length relative to d is 1/sin(φ/2) = 1/cos(θ/2)
		sinHalf := math.Sqrt(max(0, (1+cosTheta)/2))
		const miterEpsilon = 1e-10
		bisector := n1.Add(n2)
		if bl := bisector.Length(); sinHalf > 0 && bl > zeroLengthThreshold && 1/sinHalf <= s.miterLimit+miterEpsilon {
			miter := p.Add(bisector.Mul(s.d / (sinHalf * bl)))
			s.poly = append(s.poly[:0], p, o1, miter, o2)
			s.emitPolygon()
			return
		}
	}

	// bevel, also used when the miter limit is exceeded
	s.poly = append(s.poly[:0], p, o1, o2)
	s.emitPolygon()
}

// addCap adds the cap at the end point p of an open contour.  The vector
// t points away from the contour.
func (s *stroker) addCap(p, t vec.Vec2) {
	switch s.cap {
	case graphics.LineCapRound:
		s.addCircle(p)
	case graphics.LineCapSquare:
		n := normal(t).Mul(s.d)
		ext := t.Mul(s.d)
		s.poly = append(s.poly[:0], p.Add(n), p.Add(n).Add(ext), p.Sub(n).Add(ext), p.Sub(n))
		s.emitPolygon()
	}
}

// addCircle adds a polygon approximating the circle of radius d around c.
func (s *stroker) addCircle(c vec.Vec2) {
	// For a chord subtending angle θ on a circle of radius r, the maximum
	// deviation is r*(1 - cos(θ/2)), which gives θ = 2*acos(1 - ε/r).
	n := 8
	if s.tolerance < s.d {
		step := 2 * math.Acos(1-s.tolerance/s.d)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	s.poly = s.poly[:0]
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		s.poly = append(s.poly, vec.Vec2{X: c.X + s.d*cos, Y: c.Y + s.d*sin})
	}
	s.emitPolygon()
}

// emitPolygon appends the closed polygon in s.poly to the output, with
// positive orientation.
func (s *stroker) emitPolygon() {
	poly := s.poly
	if len(poly) < 3 {
		return
	}

	var area float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}

	emit := func(i int, connected bool) {
		s.dst = append(s.dst, FlatPoint{Coords: poly[i], Connected: connected})
	}
	if area >= 0 {
		emit(0, false)
		for i := 1; i < len(poly); i++ {
			emit(i, true)
		}
	} else {
		emit(0, false)
		for i := len(poly) - 1; i > 0; i-- {
			emit(i, true)
		}
	}
	emit(0, true)
}

// unit returns v scaled to length 1, or the zero vector if v is too
// short to have a direction.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// normal returns t rotated by 90 degrees.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}
