package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMethodIDs_Order(t *testing.T) {
	want := []string{
		"stereoglue",
		"stereoglue (GaU)",
		"stereoglue (MAGSAC)",
		"stereoglue (MSAC)",
		"RANSAC OpenCV",
		"skimage",
		"RHO OpenCV",
		"kornia github",
		"kornia",
		"pydegensac github",
		"pydegensac-lafcheck github",
		"GC-RANSAC github",
		"USAC_GCRANSAC OpenCV",
		"GC-RANSAC-PROSAC github",
		"MAGSAC github",
		"USAC_MAGSAC OpenCV",
		"MAGSAC++ github",
		"poselib",
		"VSAC github",
		"VSAC-PROSAC github",
		"LSQ OpenCV",
		"LMEDS OpenCV",
		"pycolmap",
		"LSQ-on-GT-inliers",
	}

	got := MethodIDs()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MethodIDs() order mismatch (-want +got):\n%s", diff)
	}

	// Repeated calls must agree.
	again := MethodIDs()
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("MethodIDs() unstable across calls (-first +second):\n%s", diff)
	}
}

func TestMethodIDs_ReturnsCopy(t *testing.T) {
	ids := MethodIDs()
	ids[0] = "mutated"

	if got := MethodIDs()[0]; got != "stereoglue" {
		t.Errorf("mutating the returned slice leaked into the table: got %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id    string
		want  string
		found bool
	}{
		{"stereoglue", "StereoGlue", true},
		{"stereoglue (MAGSAC)", "StereoGlue (MAGSAC)", true},
		{"RANSAC OpenCV", "RANSAC [OpenCV]", true},
		{"skimage", "RANSAC [skimage]", true},
		{"kornia", "LO-RANSAC [kornia-GPU]", true},
		// TeX markup and the escaped space survive verbatim.
		{"pydegensac github", "LO$^{+}$-RANSAC \\ [pydeg]", true},
		{"pydegensac-lafcheck github", "LO$^{+}$-RANSAC-LAF \\ [pydeg]", true},
		{"USAC_MAGSAC OpenCV", "MAGSAC++ [OpenCV]", true},
		{"pycolmap", "LO-RANSAC [PyCOLMAP]", true},
		{"LSQ-on-GT-inliers", "LSQ on GT inliers", true},
		{"nonexistent-method", "", false},
		{"", "", false},
		// Display names are not ids.
		{"StereoGlue", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := DisplayName(tt.id)
			if ok != tt.found {
				t.Fatalf("DisplayName(%q) ok = %v, want %v", tt.id, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestMethodMarker(t *testing.T) {
	tests := []struct {
		id    string
		want  Marker
		found bool
	}{
		{"stereoglue", MarkerCircle, true},
		{"skimage", MarkerCircledCircle, true},
		{"RHO OpenCV", MarkerDotCircle, true},
		{"pydegensac github", MarkerSquare, true},
		{"GC-RANSAC github", MarkerTriangleUp, true},
		{"USAC_GCRANSAC OpenCV", MarkerTriangleLeft, true},
		{"poselib", MarkerTriangleDown, true},
		{"VSAC github", MarkerPlus, true},
		{"LMEDS OpenCV", MarkerCross, true},
		{"pycolmap", MarkerDiamond, true},
		{"nonexistent-method", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := MethodMarker(tt.id)
			if ok != tt.found {
				t.Fatalf("MethodMarker(%q) ok = %v, want %v", tt.id, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("MethodMarker(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestMethodColor_Families(t *testing.T) {
	// Estimator families share a palette slot.
	families := []struct {
		name string
		ids  []string
		idx  int
	}{
		{"classic RANSAC", []string{"RANSAC OpenCV", "skimage", "RHO OpenCV"}, 0},
		{"LO-RANSAC", []string{"kornia github", "kornia", "pydegensac github", "pydegensac-lafcheck github"}, 2},
		{"GC-RANSAC", []string{"GC-RANSAC github", "USAC_GCRANSAC OpenCV", "GC-RANSAC-PROSAC github"}, 4},
		{"PoseLib and AC-RANSAC", []string{"poselib", "ac-ransac github SIFT", "ac-ransac github ORB"}, 5},
		{"MAGSAC", []string{"MAGSAC github", "USAC_MAGSAC OpenCV", "MAGSAC++ github"}, 6},
		{"VSAC", []string{"VSAC github", "VSAC-PROSAC github"}, 1},
		{"least squares", []string{"LSQ OpenCV", "LSQ-on-GT-inliers"}, 7},
	}

	for _, f := range families {
		t.Run(f.name, func(t *testing.T) {
			for _, id := range f.ids {
				got, ok := MethodColor(id)
				if !ok {
					t.Fatalf("MethodColor(%q) not found", id)
				}
				if got != Tab10[f.idx] {
					t.Errorf("MethodColor(%q) = %v, want Tab10[%d] = %v", id, got, f.idx, Tab10[f.idx])
				}
			}
		})
	}
}

func TestMethodColor_StereoglueVariants(t *testing.T) {
	tests := []struct {
		id  string
		idx int
	}{
		{"stereoglue (GaU)", 3},
		{"stereoglue (MAGSAC)", 4},
		{"stereoglue (MSAC)", 5},
		{"LMEDS OpenCV", 8},
		{"pycolmap", 9},
	}

	for _, tt := range tests {
		got, ok := MethodColor(tt.id)
		if !ok {
			t.Fatalf("MethodColor(%q) not found", tt.id)
		}
		if got != Tab10[tt.idx] {
			t.Errorf("MethodColor(%q) = %v, want Tab10[%d]", tt.id, got, tt.idx)
		}
	}

	// The flagship run has no fixed colour: charts assign it one in plot
	// order instead.
	if _, ok := MethodColor("stereoglue"); ok {
		t.Error("MethodColor(\"stereoglue\") should not be found")
	}
}

func TestEveryNamedMethodHasMarker(t *testing.T) {
	for _, id := range MethodIDs() {
		if _, ok := MethodMarker(id); !ok {
			t.Errorf("method %q has a display name but no marker", id)
		}
	}
}

func TestEveryNamedMethodHasColor(t *testing.T) {
	// stereoglue is the one named method that is coloured in plot order.
	for _, id := range MethodIDs() {
		if id == "stereoglue" {
			continue
		}
		if _, ok := MethodColor(id); !ok {
			t.Errorf("method %q has a display name but no colour", id)
		}
	}
}

func TestFeatureVariantsStyledButUnnamed(t *testing.T) {
	// The per-feature AC-RANSAC runs are styled for plotting but never
	// appear in the name table.
	for _, id := range []string{"ac-ransac github SIFT", "ac-ransac github ORB"} {
		if _, ok := MethodMarker(id); !ok {
			t.Errorf("MethodMarker(%q) not found", id)
		}
		if _, ok := MethodColor(id); !ok {
			t.Errorf("MethodColor(%q) not found", id)
		}
		if _, ok := DisplayName(id); ok {
			t.Errorf("DisplayName(%q) should not be found", id)
		}
	}
}

func TestSamplerColor(t *testing.T) {
	tests := []struct {
		name string
		idx  int
	}{
		{"Uniform", 0},
		{"PROSAC", 1},
		{"PNAPSAC", 2},
		{"Importance", 3},
		{"ARSampler", 4},
	}

	for _, tt := range tests {
		got, ok := SamplerColor(tt.name)
		if !ok {
			t.Fatalf("SamplerColor(%q) not found", tt.name)
		}
		if got != Tab10[tt.idx] {
			t.Errorf("SamplerColor(%q) = %v, want Tab10[%d]", tt.name, got, tt.idx)
		}
	}

	if _, ok := SamplerColor("prosac"); ok {
		t.Error("sampler lookup should be case sensitive")
	}
}

func TestScoringMarker(t *testing.T) {
	tests := []struct {
		name  string
		want  Marker
		found bool
	}{
		{"RANSAC", MarkerTriangleUp, true},
		{"MSAC", MarkerStar, true},
		{"MAGSAC", MarkerDiamond, true},
		{"ACRANSAC", MarkerCircle, true},
		// GaU and ML are colour-only scoring functions.
		{"GaU", "", false},
		{"ML", "", false},
	}

	for _, tt := range tests {
		got, ok := ScoringMarker(tt.name)
		if ok != tt.found {
			t.Fatalf("ScoringMarker(%q) ok = %v, want %v", tt.name, ok, tt.found)
		}
		if got != tt.want {
			t.Errorf("ScoringMarker(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestScoringColor(t *testing.T) {
	tests := []struct {
		name string
		idx  int
	}{
		{"RANSAC", 0},
		{"MSAC", 1},
		{"MAGSAC", 2},
		{"ACRANSAC", 3},
		{"GaU", 4},
		{"ML", 5},
	}

	for _, tt := range tests {
		got, ok := ScoringColor(tt.name)
		if !ok {
			t.Fatalf("ScoringColor(%q) not found", tt.name)
		}
		if got != Tab10[tt.idx] {
			t.Errorf("ScoringColor(%q) = %v, want Tab10[%d]", tt.name, got, tt.idx)
		}
	}
}

func TestLookups_UnknownID(t *testing.T) {
	const id = "nonexistent-method"

	if _, ok := DisplayName(id); ok {
		t.Error("DisplayName found an unregistered id")
	}
	if _, ok := MethodMarker(id); ok {
		t.Error("MethodMarker found an unregistered id")
	}
	if _, ok := MethodColor(id); ok {
		t.Error("MethodColor found an unregistered id")
	}
	if _, ok := SamplerColor(id); ok {
		t.Error("SamplerColor found an unregistered id")
	}
	if _, ok := ScoringMarker(id); ok {
		t.Error("ScoringMarker found an unregistered id")
	}
	if _, ok := ScoringColor(id); ok {
		t.Error("ScoringColor found an unregistered id")
	}
}

func TestTableSizes(t *testing.T) {
	// The marker table carries the 24 named methods plus the two
	// per-feature AC-RANSAC runs; the colour table drops stereoglue and
	// adds the same two, so both sit at a fixed size.
	if got := len(methodNames); got != 24 {
		t.Errorf("methodNames has %d entries, want 24", got)
	}
	if got := len(methodMarkers); got != 26 {
		t.Errorf("methodMarkers has %d entries, want 26", got)
	}
	if got := len(methodColors); got != 25 {
		t.Errorf("methodColors has %d entries, want 25", got)
	}
	if got := len(samplerColors); got != 5 {
		t.Errorf("samplerColors has %d entries, want 5", got)
	}
	if got := len(scoringMarkers); got != 4 {
		t.Errorf("scoringMarkers has %d entries, want 4", got)
	}
	if got := len(scoringColors); got != 6 {
		t.Errorf("scoringColors has %d entries, want 6", got)
	}
}
