package testcases

var fillCases = []TestCase{
	single("triangle_nonzero", 64, 64, Layer{
		Path: triangle(10, 50, 32, 10, 54, 50),
	}),
	single("triangle_evenodd", 64, 64, Layer{
		Path: triangle(10, 50, 32, 10, 54, 50),
		Rule: EvenOdd,
	}),
	single("star_nonzero", 64, 64, Layer{
		Path: fivePointStar(32, 32, 25),
	}),
	single("star_evenodd", 64, 64, Layer{
		Path: fivePointStar(32, 32, 25),
		Rule: EvenOdd,
	}),
	single("rectangle", 64, 64, Layer{
		Path: rectangle(10, 10, 44, 44),
	}),
	single("circle", 64, 64, Layer{
		Path: circle(32, 32, 24),
	}),
	single("partly_outside", 64, 64, Layer{
		Path: triangle(-20, 50, 32, -15, 80, 40),
	}),
}
