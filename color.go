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
	"fmt"
	"image"
	"image/color"
	"math"
)

// Color is an opaque RGB color, packed as 0x00RRGGBB.
// This is the pixel format of [Buffer].
type Color uint32

// Commonly used colors.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
	Red   Color = 0xFF0000
	Green Color = 0x00FF00
	Blue  Color = 0x0000FF
)

// RGB packs the given channel values into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Inverted returns the complementary color.
func (c Color) Inverted() Color {
	return RGB(255-c.R(), 255-c.G(), 255-c.B())
}

// Interpolate blends c over the backdrop other.  An opacity of 1 returns
// c, an opacity of 0 returns other, and values in between mix the
// channels linearly.
func (c Color) Interpolate(other Color, opacity float32) Color {
	switch {
	case opacity >= 1:
		return c
	case opacity <= 0:
		return other
	}
	o := float64(opacity)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*o + float64(b)*(1-o)))
	}
	return RGB(mix(c.R(), other.R()), mix(c.G(), other.G()), mix(c.B(), other.B()))
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R(), c.G(), c.B())
}

// ColorModel converts arbitrary colors to [Color], by compositing them
// over black.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// Source determines the color of the pixels covered by a layer.
type Source interface {
	// ColorAt returns the source color at device pixel (x, y).
	ColorAt(x, y int) Color
}

// Solid is a [Source] which paints a single color.
type Solid Color

// ColorAt implements the [Source] interface.
func (s Solid) ColorAt(int, int) Color {
	return Color(s)
}

// TranslucentSource is a [Source] with partially transparent pixels.
// [Buffer.Compose] scales the mask opacity by the alpha value of the
// source.
type TranslucentSource interface {
	Source

	// ColorAlphaAt returns the non-premultiplied source color at device
	// pixel (x, y), together with its alpha value in the range [0, 1].
	ColorAlphaAt(x, y int) (Color, float32)
}

// AccessMode selects how an [ImageSource] treats device pixels which
// fall outside the image.
type AccessMode int

const (
	// Clamp extends the image by repeating its border pixels.
	Clamp AccessMode = iota

	// Repeat tiles the plane with copies of the image.
	Repeat
)

func (m AccessMode) String() string {
	switch m {
	case Clamp:
		return "clamp"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("AccessMode(%d)", int(m))
	}
}

// ImageSource is a [Source] which paints the pixels of an image.
// The top-left pixel of the image is placed at device pixel Origin.
type ImageSource struct {
	Img    image.Image
	Mode   AccessMode
	Origin image.Point
}

// NewImageSource returns a source which paints img, with its top-left
// pixel at the device origin.
func NewImageSource(img image.Image, mode AccessMode) *ImageSource {
	return &ImageSource{Img: img, Mode: mode}
}

// ColorAt implements the [Source] interface.
// The alpha channel of the image is ignored.
func (s *ImageSource) ColorAt(x, y int) Color {
	c, _ := s.ColorAlphaAt(x, y)
	return c
}

// ColorAlphaAt implements the [TranslucentSource] interface.
// An empty image is fully transparent.
func (s *ImageSource) ColorAlphaAt(x, y int) (Color, float32) {
	if s.Img == nil {
		return Black, 0
	}
	r := s.Img.Bounds()
	if r.Empty() {
		return Black, 0
	}

	ix := s.Mode.wrap(x-s.Origin.X, r.Dx()) + r.Min.X
	iy := s.Mode.wrap(y-s.Origin.Y, r.Dy()) + r.Min.Y
	c := color.NRGBAModel.Convert(s.Img.At(ix, iy)).(color.NRGBA)
	return RGB(c.R, c.G, c.B), float32(c.A) / 255
}

// wrap maps the offset i into the range [0, n).
func (m AccessMode) wrap(i, n int) int {
	if m == Repeat {
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
	return min(max(i, 0), n-1)
}
