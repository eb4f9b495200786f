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

// Command export renders all test scenes and writes them as PNG files,
// for visual inspection.  Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/paint"
	"seehuhn.de/go/paint/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/out", "output directory")
	scale := flag.Int("scale", 1, "integer magnification of the output images")
	verbose := flag.Bool("v", false, "log every rendered frame")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	paint.SetLogger(logger)

	err := run(*outDir, max(*scale, 1), logger)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(outDir string, scale int, logger *slog.Logger) error {
	err := os.MkdirAll(outDir, 0o755)
	if err != nil {
		return err
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			img, err := render(tc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			var out image.Image = img
			if scale > 1 {
				b := img.Bounds()
				dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
				draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
				out = dst
			}
			err = writePNG(filepath.Join(outDir, name+".png"), out)
			if err != nil {
				return err
			}
			n++
		}
	}
	logger.Info("scenes exported", "count", n, "dir", outDir)
	return nil
}

// render paints a scene into a new buffer.
func render(tc testcases.TestCase) (*paint.Buffer, error) {
	c := paint.NewComposition()
	for _, tl := range tc.Layers {
		l := c.Layer(tl.Index).
			SetOutline(tl.Path).
			SetSource(paint.Solid(paint.Color(tl.Color)))
		if tl.Rule == testcases.EvenOdd {
			l.SetFillRule(paint.EvenOdd)
		}
		if tl.Stroke != nil {
			l.SetStroke(&paint.StrokeStyle{
				Width:      tl.Stroke.Width,
				Cap:        tl.Stroke.Cap,
				Join:       tl.Stroke.Join,
				MiterLimit: tl.Stroke.MiterLimit,
			})
		}
		if tl.CTM != (matrix.Matrix{}) {
			l.Concat(paint.FromMatrix(tl.CTM))
		}
	}

	buf := paint.NewBuffer(tc.Width, tc.Height)
	buf.Clear(paint.Color(tc.Background))
	err := c.RenderTo(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
