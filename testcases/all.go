package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"ctm":       ctmCases,
	"precision": precisionCases,
	"subpath":   subpathCases,
	"layers":    layerCases,
}
