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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FlattenTolerance is the maximum distance, in outline coordinates,
// between a curve and the polyline which replaces it.
const FlattenTolerance = 0.01

// Layer is an outline together with the paint used to fill it and a
// transformation which places it on the page.
//
// Layers are created by [Composition.Layer].  Transformations added with
// Rotate, Translate and Scale are applied after the ones already
// accumulated.
type Layer struct {
	outline   *path.Data
	source    Source
	transform Transform
	rule      FillRule
	stroke    *StrokeStyle
	enabled   bool

	// needsFlattening is set when flat no longer matches the outline.
	needsFlattening bool
	flat            []FlatPoint
	centerline      []FlatPoint // flattened outline before stroking
}

func newLayer() *Layer {
	return &Layer{
		source:          Solid(Black),
		transform:       Identity(),
		enabled:         true,
		needsFlattening: true,
	}
}

// Enable makes the layer visible.
func (l *Layer) Enable() *Layer {
	l.enabled = true
	return l
}

// Disable hides the layer.  Disabled layers are skipped during
// rendering.
func (l *Layer) Disable() *Layer {
	l.enabled = false
	return l
}

// Enabled reports whether the layer is visible.
func (l *Layer) Enabled() bool {
	return l.enabled
}

// SetSource sets the paint used for the covered pixels.
func (l *Layer) SetSource(s Source) *Layer {
	l.source = s
	return l
}

// Source returns the paint used for the covered pixels.
func (l *Layer) Source() Source {
	return l.source
}

// SetOutline replaces the shape of the layer.
func (l *Layer) SetOutline(p *path.Data) *Layer {
	l.outline = p
	l.needsFlattening = true
	return l
}

// Outline returns the shape of the layer.
func (l *Layer) Outline() *path.Data {
	return l.outline
}

// SetFillRule selects how overlapping contours of the outline are
// filled.
func (l *Layer) SetFillRule(rule FillRule) *Layer {
	l.rule = rule
	return l
}

// SetStroke makes the layer paint the stroked outline instead of its
// interior.  Pass nil to fill the outline again.
func (l *Layer) SetStroke(style *StrokeStyle) *Layer {
	if style != nil {
		s := *style
		style = &s
	}
	l.stroke = style
	l.needsFlattening = true
	return l
}

// Rotate turns the layer around the origin by the given angle in
// radians.  This does not require the outline to be flattened again.
func (l *Layer) Rotate(angle float64) *Layer {
	l.transform = l.transform.Chain(Rotate(angle))
	return l
}

// Translate moves the layer by v.  This does not require the outline to
// be flattened again.
func (l *Layer) Translate(v vec.Vec2) *Layer {
	l.transform = l.transform.Chain(Translate(v))
	return l
}

// Scale scales the layer by sx horizontally and by sy vertically.
// Any scale other than (1, 1) causes the outline to be flattened again
// before the next frame.
func (l *Layer) Scale(sx, sy float64) *Layer {
	if sx == 1 && sy == 1 {
		return l
	}
	l.transform = l.transform.Chain(Scale(sx, sy))
	l.needsFlattening = true
	return l
}

// Concat applies t after the accumulated transformation.  Unless t
// preserves distances (a rotation, reflection or translation), the
// outline is flattened again before the next frame.
func (l *Layer) Concat(t Transform) *Layer {
	l.transform = l.transform.Chain(t)
	if !t.isRigid() {
		l.needsFlattening = true
	}
	return l
}

// Transform returns the accumulated transformation of the layer.
func (l *Layer) Transform() Transform {
	return l.transform
}

// NeedsFlattening reports whether the cached polyline is out of date.
func (l *Layer) NeedsFlattening() bool {
	return l.needsFlattening
}

// FlattenIfNecessary recomputes the cached polyline if the outline, the
// stroke style or the scale have changed since the last call.
func (l *Layer) FlattenIfNecessary() {
	if !l.needsFlattening {
		return
	}
	if l.stroke == nil {
		l.flat = Flatten(l.outline, FlattenTolerance, l.flat[:0])
	} else {
		l.centerline = Flatten(l.outline, FlattenTolerance, l.centerline[:0])
		l.flat = strokeOutline(l.flat[:0], l.centerline, l.stroke, FlattenTolerance)
	}
	l.needsFlattening = false
}

// Bounds returns the bounding box of the layer in device coordinates.
// The second return value is false if the layer has no geometry.
func (l *Layer) Bounds() (rect.Rect, bool) {
	l.FlattenIfNecessary()
	return bounds(l.flat, l.transform)
}
