package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/tritium-lab/escatter/internal/scan"
)

// ExportData is the flat JSON form of a stored run.
type ExportData struct {
	ID       string             `json:"id"`
	Model    string             `json:"model"`
	EMin     float64            `json:"emin_ev"`
	EMax     float64            `json:"emax_ev"`
	Points   int                `json:"points"`
	Log      bool               `json:"log"`
	Energies []float64          `json:"energies_ev"`
	XSecs    []float64          `json:"xsecs_m2"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, series *scan.Series) error {
	data := ExportData{
		ID:       meta.ID,
		Model:    meta.Model,
		EMin:     meta.EMin,
		EMax:     meta.EMax,
		Points:   meta.Points,
		Log:      meta.Log,
		Energies: series.Energies,
		XSecs:    series.Values,
		Metrics:  meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile writes a run as indented JSON to path.
func ExportJSONFile(path string, meta *RunMetadata, series *scan.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, series)
}
