package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/tritium-lab/escatter/internal/scan"
	"github.com/tritium-lab/escatter/internal/xsec"
)

func scanOnce(t *testing.T) (scan.Grid, *scan.Result) {
	t.Helper()
	grid := scan.Grid{Min: 14, Max: 1000, Points: 40, Log: true}
	res, err := scan.Run(context.Background(), xsec.NewRudd(), grid)
	if err != nil {
		t.Fatal(err)
	}
	return grid, res
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	grid, res := scanOnce(t)
	runID, err := st.Save("rudd", grid, res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "rudd_") {
		t.Errorf("unexpected run id: %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Model != "rudd" || meta.Points != 40 || !meta.Log {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["threshold_ev"] != 13.59844 {
		t.Errorf("metrics not persisted: %v", meta.Metrics)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(series.Energies) != 40 {
		t.Fatalf("expected 40 points, got %d", len(series.Energies))
	}
	for i := range series.Values {
		if math.Abs(series.Values[i]-res.Series.Values[i]) > math.Abs(res.Series.Values[i])*1e-12 {
			t.Fatalf("value %d not preserved: %g vs %g", i, series.Values[i], res.Series.Values[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	grid, res := scanOnce(t)
	if _, err := st.Save("rudd", grid, res); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/escatter-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list")
	}
}

func TestExportJSON(t *testing.T) {
	_, res := scanOnce(t)
	meta := &RunMetadata{ID: "rudd_1", Model: "rudd", EMin: 14, EMax: 1000, Points: 40, Log: true, Metrics: res.Metrics}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, &res.Series); err != nil {
		t.Fatal(err)
	}

	var out ExportData
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Model != "rudd" || len(out.Energies) != 40 || len(out.XSecs) != 40 {
		t.Errorf("export mismatch: model=%s n=%d", out.Model, len(out.Energies))
	}
}
