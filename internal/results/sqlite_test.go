package results

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/stereoglue/bench.report/internal/timeutil"
)

func openTestDB(t *testing.T) (*DB, *timeutil.MockClock) {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	db.clock = clock
	return db, clock
}

func TestInsertAndLoadRun(t *testing.T) {
	db, _ := openTestDB(t)

	want := validSet()
	runID, err := db.InsertRun(want)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	got, err := db.LoadRun(runID)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadRun() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRun_PreservesSeriesOrder(t *testing.T) {
	db, _ := openTestDB(t)

	// Insertion order is deliberately not alphabetical.
	rs := &ResultSet{
		Dataset: "scannet",
		Metric:  "median rotation error",
		Series: []Series{
			{Method: "stereoglue", Points: []Point{{X: 1, Y: 2}}},
			{Method: "GC-RANSAC", Points: []Point{{X: 1, Y: 3}}},
			{Method: "RANSAC OpenCV", Points: []Point{{X: 1, Y: 4}}},
		},
	}
	runID, err := db.InsertRun(rs)
	require.NoError(t, err)

	got, err := db.LoadRun(runID)
	require.NoError(t, err)

	want := []string{"stereoglue", "GC-RANSAC", "RANSAC OpenCV"}
	if diff := cmp.Diff(want, got.Methods()); diff != "" {
		t.Errorf("LoadRun() series order mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertRun_RejectsInvalid(t *testing.T) {
	db, _ := openTestDB(t)

	rs := validSet()
	rs.Dataset = ""
	_, err := db.InsertRun(rs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid results")
}

func TestLoadRun_NotFound(t *testing.T) {
	db, _ := openTestDB(t)

	_, err := db.LoadRun("no-such-run")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLatestRun(t *testing.T) {
	db, clock := openTestDB(t)

	first := validSet()
	_, err := db.InsertRun(first)
	require.NoError(t, err)

	clock.Advance(time.Hour)

	second := validSet()
	second.Series[0].Points[0].Y = 0.99
	wantID, err := db.InsertRun(second)
	require.NoError(t, err)

	gotID, err := db.LatestRun("phototourism", "auc@10")
	require.NoError(t, err)
	require.Equal(t, wantID, gotID)

	_, err = db.LatestRun("phototourism", "no-such-metric")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no runs recorded")
}

func TestListRuns(t *testing.T) {
	db, clock := openTestDB(t)

	runs, err := db.ListRuns()
	require.NoError(t, err)
	require.Empty(t, runs)

	a := validSet()
	idA, err := db.InsertRun(a)
	require.NoError(t, err)

	clock.Advance(time.Hour)

	b := validSet()
	b.Dataset = "scannet"
	idB, err := db.InsertRun(b)
	require.NoError(t, err)

	runs, err = db.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	require.Equal(t, idB, runs[0].RunID)
	require.Equal(t, "scannet", runs[0].Dataset)
	require.Equal(t, idA, runs[1].RunID)
	require.True(t, runs[0].Created.After(runs[1].Created))
}
