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
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
)

// ErrOutOfBounds is matched by all errors reporting an access outside
// of a [Buffer].
var ErrOutOfBounds = errors.New("out of bounds")

// BoundsError reports an attempt to access pixels outside a buffer.
type BoundsError struct {
	Op     string          // the operation which failed
	Rect   image.Rectangle // the pixels which were accessed
	Bounds image.Rectangle // the buffer bounds
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("paint: %s: %v outside of buffer bounds %v", e.Op, e.Rect, e.Bounds)
}

// Unwrap returns [ErrOutOfBounds].
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Buffer is the pixel surface which layers are painted into.
// Pixels are stored in row-major order, packed as 0x00RRGGBB.
//
// Buffer implements draw.Image, so that rendered frames can be encoded
// or scaled by the standard image packages.
type Buffer struct {
	width, height int
	data          []uint32
}

// NewBuffer allocates a black width×height buffer.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Data returns the raw pixel data.  The slice is shared with the buffer
// and is meant to be handed to the presentation layer.
func (b *Buffer) Data() []uint32 { return b.data }

// Resize changes the buffer dimensions.  The pixel contents are not
// preserved in any meaningful layout; callers are expected to clear and
// repaint the buffer.
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	b.data = slices.Grow(b.data[:0], size)[:size]
	b.width = width
	b.height = height
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for i := range b.data {
		b.data[i] = uint32(c)
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Pixel returns the color at (x, y).
func (b *Buffer) Pixel(x, y int) (Color, error) {
	if !b.inBounds(x, y) {
		return 0, b.boundsError("get pixel", image.Rect(x, y, x+1, y+1))
	}
	return Color(b.data[y*b.width+x]), nil
}

// SetPixel sets the color at (x, y).
func (b *Buffer) SetPixel(x, y int, c Color) error {
	if !b.inBounds(x, y) {
		return b.boundsError("set pixel", image.Rect(x, y, x+1, y+1))
	}
	b.data[y*b.width+x] = uint32(c)
	return nil
}

func (b *Buffer) boundsError(op string, r image.Rectangle) error {
	return &BoundsError{Op: op, Rect: r, Bounds: b.Bounds()}
}

// Compose blends source into the buffer, weighted by the opacity of
// mask.  Mask pixel (x, y) is blended into buffer pixel
// (x+offset.X, y+offset.Y).
//
// If source implements [TranslucentSource], the mask opacity is scaled
// by the alpha value of the source.
//
// The mask must fit into the buffer at the given offset.  Otherwise a
// [*BoundsError] is returned and the buffer is left unchanged.
func (b *Buffer) Compose(mask *Mask, source Source, offset image.Point) error {
	target := mask.Bounds().Add(offset)
	if !target.In(b.Bounds()) && !target.Empty() {
		return b.boundsError("compose", target)
	}

	translucent, _ := source.(TranslucentSource)
	for y := range mask.height {
		if mask.rowEmpty(y) {
			continue
		}
		dy := y + offset.Y
		src := mask.coverage[y*mask.width : (y+1)*mask.width]
		dst := b.data[dy*b.width+offset.X : dy*b.width+offset.X+mask.width]
		for x, cov := range src {
			opacity := clampOpacity(cov)
			if opacity == 0 {
				continue
			}
			var c Color
			if translucent != nil {
				var alpha float32
				c, alpha = translucent.ColorAlphaAt(x+offset.X, dy)
				opacity *= alpha
				if opacity <= 0 {
					continue
				}
			} else {
				c = source.ColorAt(x+offset.X, dy)
			}
			dst[x] = uint32(c.Interpolate(Color(dst[x]), opacity))
		}
	}
	return nil
}

// ColorModel implements the [image.Image] interface.
func (b *Buffer) ColorModel() color.Model { return ColorModel }

// Bounds implements the [image.Image] interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements the [image.Image] interface.
// Pixels outside the buffer are reported as black.
func (b *Buffer) At(x, y int) color.Color {
	c, err := b.Pixel(x, y)
	if err != nil {
		return Black
	}
	return c
}

// Set implements the draw.Image interface.
// Pixels outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	_ = b.SetPixel(x, y, ColorModel.Convert(c).(Color))
}
