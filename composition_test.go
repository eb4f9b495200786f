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
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/paint/testcases"
)

func pixel(t *testing.T, b *Buffer, x, y int) Color {
	t.Helper()
	c, err := b.Pixel(x, y)
	require.NoError(t, err)
	return c
}

func TestRenderSquare(t *testing.T) {
	c := NewComposition()
	c.Layer(0).
		SetOutline(rectPath(5, 5, 15, 15)).
		SetSource(Solid(Red))

	buf := NewBuffer(20, 20)
	buf.Clear(White)
	require.NoError(t, c.RenderTo(buf))

	for y := range 20 {
		for x := range 20 {
			want := White
			if x >= 5 && x < 15 && y >= 5 && y < 15 {
				want = Red
			}
			assert.Equal(t, want, pixel(t, buf, x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRenderAntialiased(t *testing.T) {
	c := NewComposition()
	c.Layer(0).
		SetOutline(rectPath(5.5, 5, 10.5, 15)).
		SetSource(Solid(Red))

	buf := NewBuffer(20, 20)
	buf.Clear(White)
	require.NoError(t, c.RenderTo(buf))

	half := RGB(255, 128, 128)
	assert.Equal(t, White, pixel(t, buf, 4, 10))
	assert.Equal(t, half, pixel(t, buf, 5, 10))
	assert.Equal(t, Red, pixel(t, buf, 8, 10))
	assert.Equal(t, half, pixel(t, buf, 10, 10))
	assert.Equal(t, White, pixel(t, buf, 11, 10))
}

func TestLayerOrder(t *testing.T) {
	c := NewComposition()
	c.Layer(2).SetOutline(rectPath(0, 0, 10, 10)).SetSource(Solid(Blue))
	c.Layer(1).SetOutline(rectPath(0, 0, 10, 10)).SetSource(Solid(Red))
	c.Layer(3).SetOutline(rectPath(5, 5, 10, 10)).SetSource(Solid(Green))

	assert.Equal(t, []uint16{1, 2, 3}, c.Indices())
	assert.Equal(t, 3, c.Len())

	buf := NewBuffer(10, 10)
	require.NoError(t, c.RenderTo(buf))
	assert.Equal(t, Blue, pixel(t, buf, 2, 2), "layer 2 must cover layer 1")
	assert.Equal(t, Green, pixel(t, buf, 7, 7), "layer 3 must cover layer 2")
}

func TestLayerIsReused(t *testing.T) {
	c := NewComposition()
	l := c.Layer(7)
	assert.Same(t, l, c.Layer(7))
	assert.Equal(t, 1, c.Len())
}

func TestDisabledLayer(t *testing.T) {
	c := NewComposition()
	c.Layer(0).SetOutline(rectPath(0, 0, 10, 10)).SetSource(Solid(Red)).Disable()
	c.Layer(1).SetOutline(rectPath(0, 0, 5, 5)).SetSource(nil)

	buf := NewBuffer(10, 10)
	buf.Clear(White)
	require.NoError(t, c.RenderTo(buf))
	for _, p := range buf.Data() {
		require.Equal(t, uint32(White), p)
	}

	c.Layer(0).Enable()
	require.NoError(t, c.RenderTo(buf))
	assert.Equal(t, Red, pixel(t, buf, 3, 3))
}

func TestTransformedLayer(t *testing.T) {
	c := NewComposition()
	c.Layer(0).
		SetOutline(rectPath(0, 0, 2, 2)).
		SetSource(Solid(Red)).
		Scale(2, 2).
		Translate(vec.Vec2{X: 10, Y: 4})

	buf := NewBuffer(20, 10)
	require.NoError(t, c.RenderTo(buf))
	assert.Equal(t, Red, pixel(t, buf, 10, 4))
	assert.Equal(t, Red, pixel(t, buf, 13, 7))
	assert.Equal(t, Black, pixel(t, buf, 14, 4))
	assert.Equal(t, Black, pixel(t, buf, 9, 4))
}

func TestDPI(t *testing.T) {
	c := NewComposition(WithDPI(2))
	assert.Equal(t, 2.0, c.DPI())
	a := c.Layer(0)
	assert.Equal(t, Scale(2, 2), a.Transform())

	// only layers created afterwards are affected
	c.SetDPI(3)
	b := c.Layer(1)
	assert.Equal(t, Scale(2, 2), a.Transform())
	assert.Equal(t, Scale(3, 3), b.Transform())

	c.SetDPI(0)
	assert.Equal(t, 3.0, c.DPI(), "non-positive DPI must be ignored")

	assert.Equal(t, 1.0, NewComposition(WithDPI(-1)).DPI())
	assert.True(t, NewComposition().Layer(0).Transform().IsIdentity())
}

func TestClear(t *testing.T) {
	c := NewComposition()
	c.Layer(1)
	c.Layer(5)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Indices())

	buf := NewBuffer(4, 4)
	buf.Clear(Green)
	require.NoError(t, c.RenderTo(buf))
	assert.Equal(t, Green, pixel(t, buf, 0, 0))
}

func TestRenderScenes(t *testing.T) {
	for _, nc := range allCases() {
		t.Run(nc.name, func(t *testing.T) {
			buf, err := renderScene(nc.tc)
			require.NoError(t, err)
			assert.Equal(t, nc.tc.Width, buf.Width())
			assert.Equal(t, nc.tc.Height, buf.Height())
		})
	}
}

func TestTrafficLight(t *testing.T) {
	var tc testcases.TestCase
	for _, c := range testcases.All["layers"] {
		if c.Name == "traffic_light" {
			tc = c
		}
	}
	require.NotEmpty(t, tc.Layers)

	buf, err := renderScene(tc)
	require.NoError(t, err)
	assert.Equal(t, Black, pixel(t, buf, 1, 1), "background")
	assert.Equal(t, RGB(0x40, 0x40, 0x40), pixel(t, buf, 5, 44), "housing")
	assert.Equal(t, Red, pixel(t, buf, 24, 24), "red light")
	assert.Equal(t, RGB(0xFF, 0xBF, 0x00), pixel(t, buf, 24, 64), "amber light")
	assert.Equal(t, Green, pixel(t, buf, 24, 104), "green light")
}

// recordHandler collects the messages of all log records.
type recordHandler struct {
	msgs []string
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.msgs = append(h.msgs, r.Message)
	return nil
}
func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func TestCompositionLogger(t *testing.T) {
	h := &recordHandler{}
	c := NewComposition(WithLogger(slog.New(h)))
	c.Layer(0).SetOutline(rectPath(1, 1, 3, 3))

	require.NoError(t, c.RenderTo(NewBuffer(4, 4)))
	assert.Equal(t, []string{"frame rendered"}, h.msgs)
}

func TestPackageLogger(t *testing.T) {
	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := NewComposition()
	c.Layer(0).SetOutline(rectPath(1, 1, 3, 3))
	require.NoError(t, c.RenderTo(NewBuffer(4, 4)))
	assert.Contains(t, out.String(), "frame rendered")
	assert.Contains(t, out.String(), "segments=2")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
