package testcases

import "seehuhn.de/go/geom/matrix"

// Scenes with more than one layer.  Layers are listed out of order on
// purpose; the paint order is given by Index alone.
var layerCases = []TestCase{
	{
		Name:       "two_squares",
		Width:      64,
		Height:     64,
		Background: white,
		Layers: []Layer{
			{Index: 2, Path: rectangle(24, 24, 56, 56), Color: blue},
			{Index: 1, Path: rectangle(8, 8, 40, 40), Color: red},
		},
	},
	{
		Name:       "traffic_light",
		Width:      48,
		Height:     128,
		Background: black,
		Layers: []Layer{
			{Index: 0, Path: rectangle(4, 4, 44, 124), Color: 0x404040},
			{Index: 10, Path: circle(24, 24, 14), Color: red},
			{Index: 11, Path: circle(24, 64, 14), Color: 0xFFBF00},
			{Index: 12, Path: circle(24, 104, 14), Color: green},
		},
	},
	{
		Name:       "ring_over_star",
		Width:      64,
		Height:     64,
		Background: white,
		Layers: []Layer{
			{Index: 7, Path: ring(32, 32, 28, 20), Color: blue},
			{Index: 3, Path: fivePointStar(32, 32, 30), Color: 0xFFD700, Rule: EvenOdd},
		},
	},
	{
		Name:       "rotated_stack",
		Width:      64,
		Height:     64,
		Background: white,
		Layers: []Layer{
			{Index: 1, Path: rectangle(-20, -20, 20, 20), Color: 0xC0C0C0, CTM: matrix.Translate(32, 32)},
			{Index: 2, Path: rectangle(-20, -20, 20, 20), Color: 0x808080, CTM: matrix.RotateDeg(30).Translate(32, 32)},
			{Index: 3, Path: rectangle(-20, -20, 20, 20), Color: 0x404040, CTM: matrix.RotateDeg(60).Translate(32, 32)},
		},
	},
	{
		Name:       "outline_over_fill",
		Width:      64,
		Height:     64,
		Background: white,
		Layers: []Layer{
			{Index: 1, Path: circle(32, 32, 22), Color: green},
			{
				Index: 2,
				Path:  circle(32, 32, 22),
				Color: black,
				Stroke: &Stroke{
					Width: 3,
				},
			},
		},
	},
}
