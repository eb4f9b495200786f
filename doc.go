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

// Package paint renders layered vector shapes into an RGB pixel buffer.
//
// A [Composition] holds numbered [Layer]s.  Each layer has an outline
// path, a [Source] which provides the paint, and an affine [Transform].
// [Composition.RenderTo] paints the enabled layers into a [Buffer] in
// ascending index order:
//
//  1. the outline is flattened into a polyline (cached until the outline
//     or the scale of the layer changes),
//  2. the polyline is transformed into device space and cut into
//     [LineSegment]s, skipping segments which cannot be visible,
//  3. the segments are rasterized into a coverage [Mask] using signed
//     area accumulation, which gives exact anti-aliasing without
//     supersampling,
//  4. the mask is used to blend the layer's paint over the buffer.
//
// The package is single-threaded; callers render one frame at a time.
package paint

//go:generate go run ./testcases/export -out testdata/out
