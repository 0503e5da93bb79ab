// Package style defines the presentation tables shared by every benchmark
// chart: the display label, marker glyph and palette colour assigned to
// each estimator, sampler and scoring function. Keeping the assignments in
// one place means a method looks the same in every figure of a report.
package style

import "image/color"

// methodName pairs an estimator id, as it appears in benchmark results,
// with its display label. Labels may carry TeX maths markup; it is kept
// verbatim and left to the renderer.
type methodName struct {
	ID    string
	Label string
}

// methodNames lists every estimator known to the reporting pipeline, in
// the order series appear in charts and legends.
var methodNames = []methodName{
	{"stereoglue", "StereoGlue"},
	{"stereoglue (GaU)", "StereoGlue (GaU)"},
	{"stereoglue (MAGSAC)", "StereoGlue (MAGSAC)"},
	{"stereoglue (MSAC)", "StereoGlue (MSAC)"},

	{"RANSAC OpenCV", "RANSAC [OpenCV]"},
	{"skimage", "RANSAC [skimage]"},
	{"RHO OpenCV", "RHO [OpenCV]"},

	{"kornia github", "LO-RANSAC [kornia]"},
	{"kornia", "LO-RANSAC [kornia-GPU]"},
	{"pydegensac github", "LO$^{+}$-RANSAC \\ [pydeg]"},
	{"pydegensac-lafcheck github", "LO$^{+}$-RANSAC-LAF \\ [pydeg]"},

	{"GC-RANSAC github", "GC-RANSAC [Author]"},
	{"USAC_GCRANSAC OpenCV", "GC-RANSAC [OpenCV]"},
	{"GC-RANSAC-PROSAC github", "GC-RANSAC-PROSAC [Author]"},

	{"MAGSAC github", "MAGSAC [Author]"},
	{"USAC_MAGSAC OpenCV", "MAGSAC++ [OpenCV]"},
	{"MAGSAC++ github", "MAGSAC++ [Author]"},

	{"poselib", "LO-RANSAC [PoseLib]"},

	{"VSAC github", "VSAC [Author]"},
	{"VSAC-PROSAC github", "VSAC-PROSAC [Author]"},

	{"LSQ OpenCV", "LSQ [OpenCV]"},
	{"LMEDS OpenCV", "LMEDS [OpenCV]"},
	{"pycolmap", "LO-RANSAC [PyCOLMAP]"},

	{"LSQ-on-GT-inliers", "LSQ on GT inliers"},
}

// methodMarkers assigns a glyph to each method series. The AC-RANSAC runs
// are benchmarked per feature type, so they key on id plus feature suffix
// and have no display-name entry.
var methodMarkers = map[string]Marker{
	"stereoglue":          MarkerCircle,
	"stereoglue (GaU)":    MarkerCircle,
	"stereoglue (MAGSAC)": MarkerCircle,
	"stereoglue (MSAC)":   MarkerCircle,

	"RANSAC OpenCV": MarkerCircle,
	"skimage":       MarkerCircledCircle,
	"RHO OpenCV":    MarkerDotCircle,

	"kornia github":              MarkerCircle,
	"kornia":                     MarkerCircle,
	"pydegensac github":          MarkerSquare,
	"pydegensac-lafcheck github": MarkerCircle,

	"GC-RANSAC github":        MarkerTriangleUp,
	"USAC_GCRANSAC OpenCV":    MarkerTriangleLeft,
	"GC-RANSAC-PROSAC github": MarkerTriangleUp,

	"poselib":               MarkerTriangleDown,
	"ac-ransac github SIFT": MarkerTriangleLeft,
	"ac-ransac github ORB":  MarkerTriangleDown,

	"MAGSAC github":      MarkerCircle,
	"USAC_MAGSAC OpenCV": MarkerCircle,
	"MAGSAC++ github":    MarkerCircle,

	"VSAC github":        MarkerPlus,
	"VSAC-PROSAC github": MarkerPlus,

	"LSQ OpenCV":   MarkerCircle,
	"LMEDS OpenCV": MarkerCross,
	"pycolmap":     MarkerDiamond,

	"LSQ-on-GT-inliers": MarkerCircle,
}

// methodColors maps method ids to Tab10 indexes so estimator families
// share a colour across charts. Methods without an entry (the flagship
// stereoglue run) pick up the next free palette slot in plot order.
var methodColors = map[string]int{
	"RANSAC OpenCV": 0,
	"skimage":       0,
	"RHO OpenCV":    0,

	"kornia github":              2,
	"kornia":                     2,
	"pydegensac github":          2,
	"pydegensac-lafcheck github": 2,

	"GC-RANSAC github":        4,
	"USAC_GCRANSAC OpenCV":    4,
	"GC-RANSAC-PROSAC github": 4,

	"poselib":               5,
	"ac-ransac github SIFT": 5,
	"ac-ransac github ORB":  5,

	"MAGSAC github":      6,
	"USAC_MAGSAC OpenCV": 6,
	"MAGSAC++ github":    6,

	"VSAC github":        1,
	"VSAC-PROSAC github": 1,

	"LSQ OpenCV":   7,
	"LMEDS OpenCV": 8,
	"pycolmap":     9,

	"LSQ-on-GT-inliers": 7,

	"stereoglue (GaU)":    3,
	"stereoglue (MAGSAC)": 4,
	"stereoglue (MSAC)":   5,
}

// samplerColors maps sampling strategies to Tab10 indexes.
var samplerColors = map[string]int{
	"Uniform":    0,
	"PROSAC":     1,
	"PNAPSAC":    2,
	"Importance": 3,
	"ARSampler":  4,
}

// scoringMarkers assigns glyphs to scoring functions. GaU and ML appear
// only in colour-coded charts and have no marker.
var scoringMarkers = map[string]Marker{
	"RANSAC":   MarkerTriangleUp,
	"MSAC":     MarkerStar,
	"MAGSAC":   MarkerDiamond,
	"ACRANSAC": MarkerCircle,
}

// scoringColors maps scoring functions to Tab10 indexes.
var scoringColors = map[string]int{
	"RANSAC":   0,
	"MSAC":     1,
	"MAGSAC":   2,
	"ACRANSAC": 3,
	"GaU":      4,
	"ML":       5,
}

// MethodIDs returns the known method ids in presentation order. The
// returned slice is a copy.
func MethodIDs() []string {
	ids := make([]string, len(methodNames))
	for i, n := range methodNames {
		ids[i] = n.ID
	}
	return ids
}

// DisplayName returns the chart label for a method id.
func DisplayName(id string) (string, bool) {
	for _, n := range methodNames {
		if n.ID == id {
			return n.Label, true
		}
	}
	return "", false
}

// MethodMarker returns the glyph shape for a method id.
func MethodMarker(id string) (Marker, bool) {
	m, ok := methodMarkers[id]
	return m, ok
}

// MethodColor returns the series colour for a method id.
func MethodColor(id string) (color.RGBA, bool) {
	idx, ok := methodColors[id]
	if !ok {
		return color.RGBA{}, false
	}
	return PaletteColor(idx), true
}

// SamplerColor returns the series colour for a sampling strategy.
func SamplerColor(name string) (color.RGBA, bool) {
	idx, ok := samplerColors[name]
	if !ok {
		return color.RGBA{}, false
	}
	return PaletteColor(idx), true
}

// ScoringMarker returns the glyph shape for a scoring function.
func ScoringMarker(name string) (Marker, bool) {
	m, ok := scoringMarkers[name]
	return m, ok
}

// ScoringColor returns the series colour for a scoring function.
func ScoringColor(name string) (color.RGBA, bool) {
	idx, ok := scoringColors[name]
	if !ok {
		return color.RGBA{}, false
	}
	return PaletteColor(idx), true
}
