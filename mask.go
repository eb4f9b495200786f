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
	"image"

	"github.com/chewxy/math32"
)

// Mask holds the integrated signed coverage of a shape, one value per
// pixel.  Use [Mask.Opacity] to obtain values in [0, 1].
type Mask struct {
	width, height  int
	coverage       []float32
	rowHasCoverage []bool
}

// NewMask returns an empty width×height mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:          width,
		height:         height,
		coverage:       make([]float32, width*height),
		rowHasCoverage: make([]bool, height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Coverage returns the signed coverage at (x, y).
// Coordinates outside the mask have zero coverage.
func (m *Mask) Coverage(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.coverage[y*m.width+x]
}

// Set sets the signed coverage at (x, y).
// Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, coverage float32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.coverage[y*m.width+x] = coverage
	m.rowHasCoverage[y] = true
}

// Opacity returns the coverage at (x, y) as a value in [0, 1].
func (m *Mask) Opacity(x, y int) float32 {
	return clampOpacity(m.Coverage(x, y))
}

// rowEmpty reports whether row y is known to have zero coverage.
func (m *Mask) rowEmpty(y int) bool {
	return !m.rowHasCoverage[y]
}

// apply converts an accumulated winding value into signed coverage.
func (rule FillRule) apply(a float32) float32 {
	if rule == EvenOdd {
		// 1 - |1 - (|a| mod 2)|
		return 1 - math32.Abs(1-math32.Mod(math32.Abs(a), 2))
	}
	return a
}

// clampOpacity returns min(|a|, 1).
func clampOpacity(a float32) float32 {
	return math32.Min(math32.Abs(a), 1)
}

// opacityToByte converts signed coverage to an 8-bit alpha value,
// rounding to the nearest integer.
func opacityToByte(a float32) uint8 {
	return uint8(clampOpacity(a)*255 + 0.5)
}
