package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tritium-lab/escatter/internal/analysis"
	"github.com/tritium-lab/escatter/internal/config"
	"github.com/tritium-lab/escatter/internal/constants"
	"github.com/tritium-lab/escatter/internal/export"
	"github.com/tritium-lab/escatter/internal/kinematics"
	"github.com/tritium-lab/escatter/internal/numeric"
	"github.com/tritium-lab/escatter/internal/scan"
	"github.com/tritium-lab/escatter/internal/storage"
	"github.com/tritium-lab/escatter/internal/viz"
	"github.com/tritium-lab/escatter/internal/xsec"
)

var (
	dataDir    string
	emin       float64
	emax       float64
	points     int
	logGrid    bool
	cutoffMrad float64
	field      float64
	pitchDeg   float64
	energy     float64
	secondary  float64
	angles     int
	linearY    bool
	jsonOut    string
	svgOut     string
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "escatter",
		Short: "electron-hydrogen/tritium cross-section lab",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".escatter", "data directory")

	scanCmd := &cobra.Command{
		Use:   "scan [model]",
		Short: "scan a cross-section model over an energy grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	addGridFlags(scanCmd)
	scanCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	scanCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored scans",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored scan",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().BoolVar(&linearY, "linear", false, "linear instead of log10 value axis")

	compareCmd := &cobra.Command{
		Use:   "compare [model] [model] ...",
		Short: "compare models on the same energy grid",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareModels,
	}
	addGridFlags(compareCmd)

	sdcsCmd := &cobra.Command{
		Use:   "sdcs [model]",
		Short: "singly differential cross-section in secondary energy",
		Args:  cobra.ExactArgs(1),
		RunE:  runSDCS,
	}
	sdcsCmd.Flags().Float64Var(&energy, "energy", constants.TritiumEndpointEV, "primary energy (eV)")
	sdcsCmd.Flags().IntVar(&points, "points", 200, "grid points")

	ddcsCmd := &cobra.Command{
		Use:   "ddcs",
		Short: "Rudd doubly differential cross-section vs angle",
		RunE:  runDDCS,
	}
	ddcsCmd.Flags().Float64Var(&energy, "energy", constants.TritiumEndpointEV, "primary energy (eV)")
	ddcsCmd.Flags().Float64Var(&secondary, "w", 10.0, "secondary energy (eV)")
	ddcsCmd.Flags().IntVar(&angles, "points", 180, "angle grid points")

	kinCmd := &cobra.Command{
		Use:   "kinematics",
		Short: "beta-decay electron transport quantities",
		RunE:  runKinematics,
	}
	kinCmd.Flags().Float64Var(&energy, "energy", constants.TritiumEndpointEV, "kinetic energy (eV)")
	kinCmd.Flags().Float64Var(&field, "field", 1.0, "magnetic field (T)")
	kinCmd.Flags().Float64Var(&pitchDeg, "pitch", 90.0, "pitch angle (deg)")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored scan as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored scan as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a stored scan as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "curve.svg", "output file")
	exportSVGCmd.Flags().BoolVar(&linearY, "linear", false, "linear instead of log axes")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "interactive curve explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().Float64Var(&field, "field", 1.0, "magnetic field (T)")

	rootCmd.AddCommand(scanCmd, listCmd, plotCmd, compareCmd, sdcsCmd, ddcsCmd,
		kinCmd, presetsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&emin, "emin", config.DefaultEMin, "minimum energy (eV)")
	cmd.Flags().Float64Var(&emax, "emax", config.DefaultEMax, "maximum energy (eV)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	cmd.Flags().BoolVar(&logGrid, "log", true, "logarithmic energy spacing")
	cmd.Flags().Float64Var(&cutoffMrad, "cutoff", config.DefaultCutoffMrad, "Mott screening cutoff (mrad)")
}

// buildCurve resolves a model name and applies the Mott cutoff when the
// model has one.
func buildCurve(name string, cutoffRad float64) (xsec.Curve, error) {
	curve, err := scan.NewRegistry().Get(name)
	if err != nil {
		return nil, err
	}
	if m, ok := curve.(*xsec.Mott); ok && cutoffRad > 0 {
		m.CutoffAngle = cutoffRad
	}
	return curve, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	model := args[0]

	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		emin = cfg.EMin
		emax = cfg.EMax
		points = cfg.Points
		logGrid = cfg.Log
		cutoffMrad = cfg.CutoffMrad
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("emin") {
			emin = cfg.EMin
		}
		if !cmd.Flags().Changed("emax") {
			emax = cfg.EMax
		}
		if !cmd.Flags().Changed("points") {
			points = cfg.Points
		}
		if !cmd.Flags().Changed("log") {
			logGrid = cfg.Log
		}
		if !cmd.Flags().Changed("cutoff") {
			cutoffMrad = cfg.CutoffMrad
		}
		if cfg.DataDir != "" && !cmd.Flags().Changed("data") {
			dataDir = cfg.DataDir
		}
	}

	curve, err := buildCurve(model, cutoffMrad/1000)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	grid := scan.Grid{Min: emin, Max: emax, Points: points, Log: logGrid}

	fmt.Printf("scanning %s over %g - %g eV (%d points)...\n", model, emin, emax, points)
	start := time.Now()

	result, err := scan.Run(context.Background(), curve, grid)
	if err != nil {
		return err
	}

	runID, err := st.Save(model, grid, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	keys := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	for _, name := range keys {
		fmt.Printf("  %s: %.6e\n", name, result.Metrics[name])
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tRANGE (eV)\tPOINTS\tSPACING")

	for _, run := range runs {
		spacing := "linear"
		if run.Log {
			spacing = "log"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%g - %g\t%d\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.EMin, run.EMax,
			run.Points,
			spacing,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	series.Label = meta.Model

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(series.Energies))

	fmt.Println(viz.PlotSeries(series, !linearY, 80, 15))
	return nil
}

func compareModels(cmd *cobra.Command, args []string) error {
	curves := make([]xsec.Curve, 0, len(args))
	for _, name := range args {
		curve, err := buildCurve(name, cutoffMrad/1000)
		if err != nil {
			return err
		}
		curves = append(curves, curve)
	}

	grid := scan.Grid{Min: emin, Max: emax, Points: points, Log: logGrid}
	results, err := scan.RunAll(context.Background(), curves, grid)
	if err != nil {
		return err
	}

	fmt.Printf("comparing %d models over %g - %g eV\n\n", len(curves), emin, emax)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tTHRESHOLD (eV)\tPEAK (eV)\tPEAK XSEC (m^2)\tTAIL SLOPE")

	for _, res := range results {
		slope := analysis.LogLogSlope(res.Series.Energies, res.Series.Values, emax/10, emax)
		slopeStr := "-"
		if !math.IsNaN(slope) {
			slopeStr = fmt.Sprintf("%.3f", slope)
		}
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4e\t%s\n",
			res.Series.Label,
			res.Metrics["threshold_ev"],
			res.Metrics["peak_energy_ev"],
			res.Metrics["peak_xsec_m2"],
			slopeStr,
		)
	}

	return w.Flush()
}

func runSDCS(cmd *cobra.Command, args []string) error {
	curve, err := buildCurve(args[0], 0)
	if err != nil {
		return err
	}
	sd, ok := curve.(xsec.SecondaryDifferential)
	if !ok {
		return fmt.Errorf("model %s has no secondary-energy differential", args[0])
	}
	if energy <= sd.Threshold() {
		return fmt.Errorf("energy %g eV is below the %g eV threshold", energy, sd.Threshold())
	}

	wMax := (energy - sd.Threshold()) / 2
	ws := numeric.Linspace(0, wMax, points)
	values := make([]float64, len(ws))
	for i, w := range ws {
		values[i] = sd.SDCS(energy, w)
	}

	series := &scan.Series{Label: sd.Name(), Energies: ws, Values: values}
	fmt.Printf("%s SDCS at T = %g eV, W in [0, %.4g] eV\n\n", sd.Name(), energy, wMax)
	fmt.Println(viz.PlotSeries(series, true, 80, 15))

	if r, ok := sd.(*xsec.Rudd); ok {
		fmt.Printf("\nmean secondary energy: %.4f eV\n", r.MeanSecondaryEnergy(energy))
	}
	return nil
}

func runDDCS(cmd *cobra.Command, args []string) error {
	r := xsec.NewRudd()
	if energy <= r.Threshold() {
		return fmt.Errorf("energy %g eV is below the %g eV threshold", energy, r.Threshold())
	}

	thetas := numeric.Linspace(0, math.Pi, angles)
	values := make([]float64, len(thetas))
	for i, th := range thetas {
		values[i] = r.DDCS(energy, secondary, th)
	}

	series := &scan.Series{Label: "rudd ddcs", Energies: thetas, Values: values}
	fmt.Printf("rudd DDCS at T = %g eV, W = %g eV, theta in [0, pi]\n\n", energy, secondary)
	fmt.Println(viz.PlotSeries(series, true, 80, 15))
	return nil
}

func runKinematics(cmd *cobra.Command, args []string) error {
	pitch := pitchDeg * math.Pi / 180
	vPar, vPerp := kinematics.VelocityComponents(energy, pitch)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "kinetic energy\t%.6g eV\n", energy)
	fmt.Fprintf(w, "gamma\t%.9f\n", kinematics.Gamma(energy))
	fmt.Fprintf(w, "beta\t%.9f\n", kinematics.Beta(energy))
	fmt.Fprintf(w, "speed\t%.6e m/s\n", kinematics.Speed(energy))
	fmt.Fprintf(w, "momentum\t%.6e kg m/s\n", kinematics.Momentum(energy))
	fmt.Fprintf(w, "pitch angle\t%.2f deg\n", pitchDeg)
	fmt.Fprintf(w, "v parallel\t%.6e m/s\n", vPar)
	fmt.Fprintf(w, "v perpendicular\t%.6e m/s\n", vPerp)
	fmt.Fprintf(w, "cyclotron frequency\t%.6e Hz (B = %g T)\n", kinematics.CyclotronFrequency(energy, field), field)
	fmt.Fprintf(w, "cyclotron radius\t%.6e m\n", kinematics.CyclotronRadius(energy, field, pitch))
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if jsonOut != "" {
		return storage.ExportJSONFile(jsonOut, meta, series)
	}
	return storage.ExportJSON(os.Stdout, meta, series)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"energy_ev", "xsec_m2"}); err != nil {
		return err
	}
	for i := range series.Energies {
		row := []string{
			strconv.FormatFloat(series.Energies[i], 'g', -1, 64),
			strconv.FormatFloat(series.Values[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	series.Label = meta.Model

	svg := export.CurveSVG(series, 800, 500, !linearY, !linearY)
	if svg == "" {
		return fmt.Errorf("run %s has too few plottable points", runID)
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	curve, err := buildCurve(args[0], cutoffMrad/1000)
	if err != nil {
		return err
	}

	grid := scan.Grid{Min: emin, Max: emax, Points: points, Log: logGrid}
	if err := grid.Validate(); err != nil {
		return err
	}

	m := viz.NewExplorer(curve, grid, field)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
