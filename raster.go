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
	"slices"
)

// FillRule determines which points are inside a shape.
type FillRule int

const (
	// NonZero treats a point as inside if the winding number is non-zero.
	NonZero FillRule = iota

	// EvenOdd treats a point as inside if the winding number is odd.
	EvenOdd
)

// Rasterizer converts line segments into pixel coverage values.
// Create one instance and reuse it: the accumulation buffer grows as
// needed but never shrinks, so that rendering reaches a steady state
// without allocations.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Rule selects how accumulated winding is turned into coverage.
	Rule FillRule

	width, height int

	acc         []float32 // per-pixel coverage differences, row-major
	rowHasEdges []bool    // per-scanline flag: true if any segment contributes
	mask        Mask
}

// NewRasterizer returns a Rasterizer for a width×height pixel grid.
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(width, height)
	return r
}

// Reset clears all accumulated coverage and resizes the pixel grid,
// preserving internal buffer capacity.  The fill rule is reset to
// [NonZero].
func (r *Rasterizer) Reset(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	r.width = width
	r.height = height
	r.Rule = NonZero

	size := width * height
	r.acc = slices.Grow(r.acc[:0], size)[:size]
	clear(r.acc)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)
}

// Width returns the width of the pixel grid.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the height of the pixel grid.
func (r *Rasterizer) Height() int { return r.height }

// Coverage accumulation model (after font-rs):
//
// Each pixel stores the change in signed coverage between this pixel and
// its left neighbour.  A segment crossing a scanline with vertical extent
// dy and direction ±1 adds a total of d = ±dy to the row, distributed
// over the columns it touches according to how much of each pixel lies
// to the right of the segment.  The coverage of a pixel is the running
// sum of the row up to and including that pixel.
//
// A closed contour therefore sums to zero to the left of and to the right
// of the shape, and to ±1 inside it.

// AddSegment accumulates the signed area contribution of seg.
// Rows outside the grid are not visited; contributions to the left of
// the grid are folded into the first column and those to the right of
// the grid are dropped, since they cannot affect any visible pixel.
func (r *Rasterizer) AddSegment(seg *LineSegment) {
	fromY := seg.P0.Y
	toY := seg.P0.Y + seg.DeltaY
	if !(toY > fromY) || r.width == 0 {
		return
	}

	// clamp in floating point, so that far away endpoints cannot
	// overflow the conversion to int
	yStart := int(max(math.Floor(fromY), 0))
	yEnd := int(min(math.Ceil(toY), float64(r.height)))

	for y := yStart; y < yEnd; y++ {
		top := max(float64(y), fromY)
		bot := min(float64(y+1), toY)
		dy := bot - top
		if dy <= 0 {
			continue
		}

		x := seg.xAtRow(top)
		xNext := seg.xAtRow(bot)
		d := float32(dy) * seg.Direction

		r.accumulateRow(y, x, xNext, d)
		r.rowHasEdges[y] = true
	}
}

// accumulateRow distributes the signed area d of a segment slice, which
// runs from x to xNext within scanline y, over the columns of the row.
func (r *Rasterizer) accumulateRow(y int, x, xNext float64, d float32) {
	row := r.acc[y*r.width : (y+1)*r.width]

	x0, x1 := x, xNext
	if x0 > x1 {
		x0, x1 = x1, x0
	}

	// Entirely to the right of the grid: no visible pixel is affected.
	if x0 >= float64(r.width) {
		return
	}
	// Entirely to the left of the grid: every visible pixel is fully to
	// the right of the slice.
	if x1 <= 0 {
		addClamped(row, 0, d)
		return
	}

	// Clip the slice to the columns of the grid.  Along the slice x is
	// linear in y, so each part carries a share of d proportional to
	// its horizontal extent.  The part left of the grid goes to the
	// first column, the part right of the grid is dropped.
	w := float64(r.width)
	if x0 < 0 || x1 > w {
		span := x1 - x0
		dd := float64(d)
		if x0 < 0 {
			row[0] += float32(dd * -x0 / span)
		}
		x0 = max(x0, 0)
		x1 = min(x1, w)
		d = float32(dd * (x1 - x0) / span)
	}

	x0Floor := math.Floor(x0)
	x0i := int(x0Floor)
	x1Ceil := math.Ceil(x1)
	x1i := int(x1Ceil)

	if x1i <= x0i+1 {
		// The slice lies within a single column: split d between this
		// column and the next according to the mid point.
		xmf := float32(0.5*(x0+x1) - x0Floor)
		addClamped(row, x0i, d-d*xmf)
		addClamped(row, x0i+1, d*xmf)
		return
	}

	// The slice crosses several columns: apportion the area of the
	// trapezoid column by column.
	s := float32(1 / (x1 - x0))
	x0f := float32(x0 - x0Floor)
	a0 := 0.5 * s * (1 - x0f) * (1 - x0f)
	x1f := float32(x1 - x1Ceil + 1)
	am := 0.5 * s * x1f * x1f

	addClamped(row, x0i, d*a0)
	if x1i == x0i+2 {
		addClamped(row, x0i+1, d*(1-a0-am))
	} else {
		a1 := s * (1.5 - x0f)
		addClamped(row, x0i+1, d*(a1-a0))
		for xi := x0i + 2; xi < x1i-1; xi++ {
			addClamped(row, xi, d*s)
		}
		a2 := a1 + float32(x1i-x0i-3)*s
		addClamped(row, x1i-1, d*(1-a2-am))
	}
	addClamped(row, x1i, d*am)
}

// addClamped adds v to row[i].  Indices left of the row are folded into
// the first column, indices right of the row are ignored.
func addClamped(row []float32, i int, v float32) {
	if i >= len(row) {
		return
	}
	if i < 0 {
		i = 0
	}
	row[i] += v
}

// Mask integrates the accumulated coverage and returns the result.
// The returned mask shares storage with the Rasterizer and is only valid
// until the next call to Reset.
func (r *Rasterizer) Mask() *Mask {
	m := &r.mask
	m.width = r.width
	m.height = r.height
	size := r.width * r.height
	m.coverage = slices.Grow(m.coverage[:0], size)[:size]
	m.rowHasCoverage = append(m.rowHasCoverage[:0], r.rowHasEdges...)

	for y := range r.height {
		dst := m.coverage[y*r.width : (y+1)*r.width]
		if !r.rowHasEdges[y] {
			clear(dst)
			continue
		}
		src := r.acc[y*r.width : (y+1)*r.width]
		var accum float32
		for x, delta := range src {
			accum += delta
			dst[x] = r.Rule.apply(accum)
		}
	}
	return m
}

// ForEachPixel calls fn for every pixel of the grid, in row-major order,
// with the pixel's opacity scaled to 0-255.
func (r *Rasterizer) ForEachPixel(fn func(x, y int, alpha uint8)) {
	for y := range r.height {
		row := r.acc[y*r.width : (y+1)*r.width]
		var accum float32
		for x, delta := range row {
			accum += delta
			fn(x, y, opacityToByte(r.Rule.apply(accum)))
		}
	}
}
