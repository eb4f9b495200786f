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
	"log/slog"
	"maps"
	"slices"
)

// Composition is an ordered collection of layers which together form
// one frame.  Layers are painted in ascending order of their index, so
// that layers with larger indices cover layers with smaller ones.
//
// A Composition is not safe for concurrent use.
type Composition struct {
	layers map[uint16]*Layer
	dpi    float64
	logger *slog.Logger

	// buffers reused across layers and frames
	raster *Rasterizer
	segs   []LineSegment
}

// NewComposition returns an empty composition.
func NewComposition(opts ...Option) *Composition {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Composition{
		layers: make(map[uint16]*Layer),
		dpi:    o.dpi,
		logger: o.logger,
		raster: NewRasterizer(0, 0),
	}
}

// Layer returns the layer at the given index.  If there is no such
// layer, a new one is created.  New layers are enabled, filled with
// black, and scaled by the current DPI factor.
func (c *Composition) Layer(index uint16) *Layer {
	if l, ok := c.layers[index]; ok {
		return l
	}
	l := newLayer()
	l.Scale(c.dpi, c.dpi)
	c.layers[index] = l
	return l
}

// SetDPI sets the scale factor for layers created from now on.
// Existing layers keep the scale they were created with.
// Non-positive values are ignored.
func (c *Composition) SetDPI(dpi float64) {
	if dpi > 0 {
		c.dpi = dpi
	}
}

// DPI returns the scale factor applied to new layers.
func (c *Composition) DPI() float64 {
	return c.dpi
}

// Clear removes all layers.
func (c *Composition) Clear() {
	clear(c.layers)
}

// Len returns the number of layers.
func (c *Composition) Len() int {
	return len(c.layers)
}

// Indices returns the indices of all layers, in paint order.
func (c *Composition) Indices() []uint16 {
	return slices.Sorted(maps.Keys(c.layers))
}

// LineSegments returns the line segments of all enabled layers which can
// contribute to a width×height viewport, flattening outlines where
// necessary.
func (c *Composition) LineSegments(width, height int) []LineSegment {
	layers := make([]*Layer, 0, len(c.layers))
	for _, idx := range c.Indices() {
		layers = append(layers, c.layers[idx])
	}
	return computeLineSegments(layers, width, height)
}

// RenderTo paints all enabled layers into buf, in ascending order of
// their index.  Each layer is blended over the result of the layers
// before it.
func (c *Composition) RenderTo(buf *Buffer) error {
	log := c.logger
	if log == nil {
		log = Logger()
	}

	w, h := buf.Width(), buf.Height()
	painted := 0
	totalSegs := 0
	for _, idx := range c.Indices() {
		l := c.layers[idx]
		if !l.enabled || l.source == nil {
			continue
		}

		c.segs = appendLayerSegments(c.segs[:0], l, w, h)
		if len(c.segs) == 0 {
			continue
		}
		totalSegs += len(c.segs)

		c.raster.Reset(w, h)
		c.raster.Rule = l.rule
		for i := range c.segs {
			c.raster.AddSegment(&c.segs[i])
		}

		err := buf.Compose(c.raster.Mask(), l.source, image.Point{})
		if err != nil {
			log.Warn("cannot compose layer", "index", idx, "error", err)
			return fmt.Errorf("layer %d: %w", idx, err)
		}
		painted++
	}

	log.Debug("frame rendered",
		"layers", len(c.layers),
		"painted", painted,
		"segments", totalSegs,
		"width", w,
		"height", h)
	return nil
}
