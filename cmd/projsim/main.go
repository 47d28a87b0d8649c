package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/export"
	"github.com/san-kum/projsim/internal/metrics"
	"github.com/san-kum/projsim/internal/optim"
	"github.com/san-kum/projsim/internal/physics"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/sim"
	"github.com/san-kum/projsim/internal/viz"
)

var (
	verbose   bool
	logFormat string

	x0       float64
	y0       float64
	vx0      float64
	vy0      float64
	drag     float64
	dt       float64
	method   string
	maxSteps int
	// Config file
	configFile string
	// Preset name
	preset string

	outPath  string
	plot     bool
	pngPath  string
	benchDts []float64

	target    float64
	maxRange  bool
	savePath  string
	minAngle  float64
	maxAngle  float64
	numAngles int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "projsim",
		Short:        "projectile trajectories under gravity and linear drag",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate one trajectory",
		Args:  cobra.NoArgs,
		RunE:  runTrajectory,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().StringVar(&outPath, "out", "", "export file (.csv, .json, .svg, .png)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot height per sample")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare explicit and improved Euler on the same launch",
		Args:  cobra.NoArgs,
		RunE:  compareMethods,
	}
	addConfigFlags(compareCmd)
	compareCmd.Flags().StringVar(&pngPath, "png", "", "write both trajectories to a PNG")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive trajectory viewer",
		Args:  cobra.NoArgs,
		RunE:  viewTrajectory,
	}
	addConfigFlags(viewCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark both methods over a range of timesteps",
		Args:  cobra.NoArgs,
		RunE:  benchMethods,
	}
	addConfigFlags(benchCmd)
	benchCmd.Flags().Float64SliceVar(&benchDts, "dts", []float64{0.1, 0.01, 0.001, 0.0001}, "timesteps to benchmark")

	aimCmd := &cobra.Command{
		Use:   "aim",
		Short: "search the launch angle that lands at a target range",
		Args:  cobra.NoArgs,
		RunE:  aimLaunch,
	}
	addConfigFlags(aimCmd)
	aimCmd.Flags().Float64Var(&target, "target", 0, "target range (m)")
	aimCmd.Flags().BoolVar(&maxRange, "max", false, "search the longest range instead of a target")
	aimCmd.Flags().StringVar(&savePath, "save", "", "write the best launch as a config file (yaml or toml)")
	aimCmd.Flags().Float64Var(&minAngle, "min-angle", 1, "lowest elevation (deg)")
	aimCmd.Flags().Float64Var(&maxAngle, "max-angle", 89, "highest elevation (deg)")
	aimCmd.Flags().IntVar(&numAngles, "angles", 89, "number of elevations to try")
	aimCmd.MarkFlagsOneRequired("target", "max")
	aimCmd.MarkFlagsMutuallyExclusive("target", "max")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, compareCmd, viewCmd, benchCmd, aimCmd, presetsCmd)
	return rootCmd
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&x0, "x", config.DefaultX, "initial x position (m)")
	cmd.Flags().Float64Var(&y0, "y", config.DefaultY, "initial height (m)")
	cmd.Flags().Float64Var(&vx0, "vx", config.DefaultVX, "initial horizontal velocity (m/s)")
	cmd.Flags().Float64Var(&vy0, "vy", config.DefaultVY, "initial vertical velocity (m/s)")
	cmd.Flags().Float64Var(&drag, "drag", config.DefaultDrag, "linear drag coefficient (1/s)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().StringVar(&method, "method", projectile.ExplicitEuler.String(), "integration method (explicit_euler, improved_euler)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step limit (0 = default)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func setupLogging(cmd *cobra.Command) error {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	switch logFormat {
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", logFormat)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order, and logs how the result differs from the defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// Config file overrides preset
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("x") {
		cfg.Launch.X = x0
	}
	if flags.Changed("y") {
		cfg.Launch.Y = y0
	}
	if flags.Changed("vx") {
		cfg.Launch.VX = vx0
	}
	if flags.Changed("vy") {
		cfg.Launch.VY = vy0
	}
	if flags.Changed("drag") {
		cfg.Drag = drag
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("method") {
		m, err := projectile.ParseMethod(method)
		if err != nil {
			return nil, err
		}
		cfg.Method = m
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, c := range config.Diff(config.DefaultConfig(), cfg) {
		slog.Info(c.String(), "field", c.Field)
	}
	return cfg, nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	slog.Debug("integrating", "method", cfg.Method, "dt", cfg.Dt, "drag", cfg.Drag)
	start := time.Now()

	var result *sim.Result
	if verbose {
		result, err = projectile.Trace(cmd.Context(), cfg.Projectile(), sampleLogger{}, metrics.Defaults(physics.StandardGravity)...)
	} else {
		result, err = projectile.Run(cmd.Context(), cfg.Projectile(), metrics.Defaults(physics.StandardGravity)...)
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	slog.Debug("integration finished", "steps", result.StepsTaken, "elapsed", elapsed)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.TitleStyle.Render(fmt.Sprintf("%s trajectory", cfg.Method)))
	fmt.Fprintf(out, "samples: %d\n", len(result.Trajectory))
	fmt.Fprintf(out, "steps: %d\n", result.StepsTaken)

	impact := result.Trajectory.Impact()
	fmt.Fprintf(out, "impact: x=%.4f y=%.4f t=%.4f\n", impact.X, impact.Y, impact.T)

	var table strings.Builder
	w := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Fprintf(w, "%s\t%.6f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, viz.PanelStyle.Render(strings.TrimSuffix(table.String(), "\n")))

	if plot && len(result.Trajectory) > 1 {
		graph := asciigraph.Plot(result.Trajectory.Heights(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("height (m) per sample"),
		)
		fmt.Fprintln(out)
		fmt.Fprintln(out, graph)
	}

	if outPath != "" {
		doc := export.NewDocument(cfg, result)
		if err := export.WriteFile(outPath, doc); err != nil {
			return err
		}
		slog.Info("exported trajectory", "path", outPath, "run_id", doc.RunID)
	}

	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	methods := projectile.Methods()
	cfgs := make([]projectile.Config, len(methods))
	for i, m := range methods {
		cfgs[i] = cfg.Projectile()
		cfgs[i].Method = m
	}

	trajs, err := projectile.Sweep(cmd.Context(), cfgs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing methods (dt=%.4f, drag=%.3f)\n\n", cfg.Dt, cfg.Drag)

	vacuum := cfg.Drag == 0
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := "METHOD\tSAMPLES\tAPEX\tRANGE\tFLIGHT_TIME\tIMPACT_SPEED"
	if vacuum {
		header += "\tVACUUM_ERR\tLANDING_LAG"
	}
	fmt.Fprintln(w, header)

	launch := cfgs[0].Launch()
	landing := physics.VacuumFlightTime(launch, physics.StandardGravity)
	for i, traj := range trajs {
		impact := traj.Impact()
		row := fmt.Sprintf("%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f",
			methods[i], len(traj), traj.Apex().Y, traj.Range(), traj.FlightTime(), impact.Speed())
		if vacuum {
			row += fmt.Sprintf("\t%.4e\t%.4f", vacuumError(traj, launch), traj.FlightTime()-landing)
		}
		fmt.Fprintln(w, row)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if vacuum {
		fmt.Fprintf(out, "\nvacuum landing time: %.6f s\n", landing)
	}
	fmt.Fprintf(out, "\nmax |dy| between methods: %.6f m\n\n", maxHeightGap(trajs[0], trajs[1]))

	series := make([][]float64, len(trajs))
	legends := make([]string, len(trajs))
	for i, traj := range trajs {
		series[i] = traj.Heights()
		legends[i] = methods[i].String()
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Cyan),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption("height (m) per sample"),
	)
	fmt.Fprintln(out, graph)

	if pngPath != "" {
		plotSeries := make([]export.Series, len(trajs))
		for i, traj := range trajs {
			plotSeries[i] = export.Series{Label: methods[i].String(), Trajectory: traj}
		}
		if err := export.WritePNG(pngPath, "method comparison", plotSeries, 6*vg.Inch, 4*vg.Inch); err != nil {
			return err
		}
		slog.Info("wrote comparison plot", "path", pngPath)
	}

	return nil
}

// vacuumError is the largest distance between a sample and the drag-free
// closed form at the same time.
func vacuumError(traj sim.Trajectory, launch sim.State) float64 {
	worst := 0.0
	for _, p := range traj {
		exact := physics.VacuumState(launch, p.T, physics.StandardGravity)
		worst = math.Max(worst, math.Hypot(p.X-exact.X, p.Y-exact.Y))
	}
	return worst
}

func maxHeightGap(a, b sim.Trajectory) float64 {
	n := min(len(a), len(b))
	gap := 0.0
	for i := 0; i < n; i++ {
		gap = math.Max(gap, math.Abs(a[i].Y-b[i].Y))
	}
	return gap
}

func viewTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	changes, err := viz.RunViewer(cfg)
	if err != nil {
		return err
	}
	for _, c := range changes {
		slog.Info(c.String(), "field", c.Field, "source", "viewer")
	}
	return nil
}

func benchMethods(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking launch (%.2f, %.2f) v0=(%.2f, %.2f) drag=%.3f\n\n",
		cfg.Launch.X, cfg.Launch.Y, cfg.Launch.VX, cfg.Launch.VY, cfg.Drag)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, m := range projectile.Methods() {
		for _, step := range benchDts {
			pc := cfg.Projectile()
			pc.Method = m
			pc.Dt = step

			start := time.Now()
			result, err := projectile.Run(cmd.Context(), pc)
			if err != nil {
				return fmt.Errorf("%s dt=%g: %w", m, step, err)
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / math.Max(elapsed.Seconds(), 1e-9)
			fmt.Fprintf(w, "%s\t%.4fs\t%d\t%v\t%.0f\n",
				m, step, result.StepsTaken, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func aimLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numAngles < 1 || minAngle > maxAngle {
		return fmt.Errorf("invalid angle grid: %d angles in [%g, %g]", numAngles, minAngle, maxAngle)
	}

	g := optim.NewGridSearch(optim.Param{Name: "angle", Values: optim.Linspace(minAngle, maxAngle, numAngles)})
	objective, title := optim.TargetRange(target), fmt.Sprintf("aiming at %.2f m", target)
	if maxRange {
		objective, title = optim.MaxRange, "aiming for maximum range"
	}

	best, err := g.Search(cmd.Context(), cfg.Projectile(), objective)
	if err != nil {
		return err
	}
	slog.Debug("aim search finished", "evaluated", best.Evaluated)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.TitleStyle.Render(title))
	fmt.Fprintln(out, viz.Field("elevation", fmt.Sprintf("%.2f deg", best.Params["angle"])))
	fmt.Fprintln(out, viz.Field("velocity", fmt.Sprintf("(%.3f, %.3f) m/s", best.Config.VX0, best.Config.VY0)))
	fmt.Fprintln(out, viz.Field("range", fmt.Sprintf("%.3f m", best.Result.Trajectory.Range())))
	if !maxRange {
		fmt.Fprintln(out, viz.Field("miss", fmt.Sprintf("%.3f m", best.Score)))
	}

	if savePath != "" {
		if err := config.Save(savePath, config.FromProjectile(best.Config)); err != nil {
			return err
		}
		slog.Info("saved launch", "path", savePath)
	}
	return nil
}

// sampleLogger traces every recorded sample at debug level.
type sampleLogger struct{}

func (sampleLogger) OnStep(p sim.Point) {
	slog.Debug("sample", "t", p.T, "x", p.X, "y", p.Y, "vx", p.VX, "vy", p.VY)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tLAUNCH\tVELOCITY\tDRAG\tDT\tMETHOD")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t(%.2f, %.2f)\t(%.2f, %.2f)\t%.3f\t%.3f\t%s\n",
			name, p.Launch.X, p.Launch.Y, p.Launch.VX, p.Launch.VY, p.Drag, p.Dt, p.Method)
	}
	return w.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
