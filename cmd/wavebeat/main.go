package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/wavebeat/internal/analysis"
	"github.com/san-kum/wavebeat/internal/animate"
	"github.com/san-kum/wavebeat/internal/config"
	"github.com/san-kum/wavebeat/internal/gui"
	"github.com/san-kum/wavebeat/internal/logger"
	"github.com/san-kum/wavebeat/internal/quantum"
	"github.com/san-kum/wavebeat/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	preset     string
	env        string
	// Physics and grid overrides
	momentum float64
	dpOverP  float64
	hbar     float64
	mass     float64
	npoints  int
	// Animation overrides
	tmax     float64
	dt       float64
	interval float64
	timeMode string
	// Rendering
	plain      bool
	theme      string
	winWidth   int
	winHeight  int
	plotWidth  int
	plotHeight int
	// Single-frame commands
	at    float64
	peaks int
	force bool
)

// main registers the commands and runs the root command, which animates
// the superposition in the terminal. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "wavebeat",
		Short:        "animate a superposition of two momentum eigenstates",
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&env, "env", "", "logger environment (development, production, quiet)")
	pf.Float64Var(&momentum, "p", config.DefaultP, "momentum of the first eigenstate")
	pf.Float64Var(&dpOverP, "dp-over-p", config.DefaultDpOverP, "momentum offset as a fraction of p")
	pf.Float64Var(&hbar, "hbar", config.DefaultHbar, "reduced Planck constant")
	pf.Float64Var(&mass, "m", config.DefaultMass, "particle mass")
	pf.IntVar(&npoints, "npoints", config.DefaultNPoints, "number of grid points")
	pf.Float64Var(&tmax, "tmax", config.DefaultTMax, "total time")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "time step")
	pf.Float64Var(&interval, "interval", config.DefaultPlotIntervalSec, "pause between frames in seconds")
	pf.StringVar(&timeMode, "time-mode", config.TimeModeStep, "time argument per frame (step, physical)")

	rootCmd.Flags().BoolVar(&plain, "plain", false, "draw with plain ANSI output instead of the TUI")
	rootCmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, "color theme")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().BoolVar(&plain, "plain", false, "draw with plain ANSI output instead of the TUI")
	liveCmd.Flags().StringVar(&theme, "theme", viz.CurrentTheme.Name, "color theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate in a raylib window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&winWidth, "width", 1280, "window width")
	guiCmd.Flags().IntVar(&winHeight, "height", 720, "window height")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot a single frame",
		RunE:  plotFrame,
	}
	plotCmd.Flags().Float64Var(&at, "t", 0, "time argument")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height per panel")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "show derived scales",
		RunE:  showInfo,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "spectrum and envelope of a single frame",
		RunE:  analyzeFrame,
	}
	analyzeCmd.Flags().Float64Var(&at, "t", 0, "time argument")
	analyzeCmd.Flags().IntVar(&peaks, "peaks", 2, "number of spectral peaks to report")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(liveCmd, guiCmd, plotCmd, infoCmd, analyzeCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
		logger.Sync(ctx)
		os.Exit(1)
	}
	logger.Sync(ctx)
}

// loadConfig layers preset, config file, WAVEBEAT_* variables and explicitly
// set flags, in that order, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.ReadFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("env") {
		cfg.Environment = env
	}
	if flags.Changed("p") {
		cfg.Physics.P = momentum
	}
	if flags.Changed("dp-over-p") {
		cfg.Physics.DpOverP = dpOverP
	}
	if flags.Changed("hbar") {
		cfg.Physics.Hbar = hbar
	}
	if flags.Changed("m") {
		cfg.Physics.M = mass
	}
	if flags.Changed("npoints") {
		cfg.Grid.NPoints = npoints
	}
	if flags.Changed("tmax") {
		cfg.Animation.TMax = tmax
	}
	if flags.Changed("dt") {
		cfg.Animation.Dt = dt
	}
	if flags.Changed("interval") {
		cfg.Animation.PlotIntervalSec = interval
	}
	if flags.Changed("time-mode") {
		cfg.Animation.TimeMode = timeMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the config, installs the logger and builds the driver.
func setup(cmd *cobra.Command, environment string) (context.Context, *config.Config, *quantum.Grid, *animate.Driver, error) {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return ctx, nil, nil, nil, err
	}
	if environment == "" {
		environment = cfg.Environment
	}
	logger.Setup(environment)
	ctx = logger.WithFields(ctx, zap.String("command", cmd.Name()))

	p := cfg.Params()
	grid, err := quantum.NewGrid(p, cfg.Grid.NPoints, cfg.Grid.XLengthInLambdaEnv)
	if err != nil {
		logger.Error(ctx, "cannot build grid", zap.Error(err))
		return ctx, nil, nil, nil, err
	}
	d := animate.New(quantum.NewSampler(p), grid, animate.Options{
		TMax:         cfg.Animation.TMax,
		Dt:           cfg.Animation.Dt,
		Interval:     cfg.PlotInterval(),
		PhysicalTime: cfg.PhysicalTime(),
		Title:        cfg.Title(),
	})
	logger.Debug(ctx, "configured",
		zap.Float64("p", p.P),
		zap.Float64("dp", p.Dp),
		zap.Int("npoints", grid.Len()),
		zap.Float64("xmax", grid.XMax()),
		zap.Int("steps", d.Steps()),
	)
	return ctx, cfg, grid, d, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	// the TUI owns the terminal, so logging is silenced unless --plain
	environment := logger.QuietEnvironment
	if plain {
		environment = ""
	}
	ctx, _, _, d, err := setup(cmd, environment)
	if err != nil {
		return err
	}

	if plain {
		r := viz.NewLiveRenderer(os.Stdout, 100, 12, d.Steps())
		defer r.Close()
		if err := d.Run(ctx, r); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	if err := viz.SetTheme(theme); err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewModel(d), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	ctx, cfg, _, d, err := setup(cmd, "")
	if err != nil {
		return err
	}

	w := gui.Open(winWidth, winHeight, cfg.Title())
	defer w.Close()

	err = d.Run(ctx, w)
	switch {
	case errors.Is(err, gui.ErrWindowClosed):
		logger.Info(ctx, "window closed")
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	}
	return err
}

func plotFrame(cmd *cobra.Command, args []string) error {
	_, _, _, d, err := setup(cmd, "")
	if err != nil {
		return err
	}
	fmt.Print(viz.Snapshot(d.FrameAt(at), plotWidth, plotHeight))
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	_, cfg, grid, d, err := setup(cmd, "")
	if err != nil {
		return err
	}
	p := cfg.Params()
	sc := grid.Scales()
	w1, w2 := p.Omega()
	k1, k2 := p.Wavenumbers()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, cfg.Title())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "p\t%g\n", p.P)
	fmt.Fprintf(w, "dp\t%g\n", p.Dp)
	fmt.Fprintf(w, "hbar\t%g\n", p.Hbar)
	fmt.Fprintf(w, "m\t%g\n", p.M)
	fmt.Fprintf(w, "A\t%s\n", formatComplex(p.A))
	fmt.Fprintf(w, "B\t%s\n", formatComplex(p.B))
	fmt.Fprintf(w, "carrier wavelength\t%.6g\n", sc.CarrierWavelength)
	fmt.Fprintf(w, "envelope wavelength\t%.6g\n", sc.EnvelopeWavelength)
	fmt.Fprintf(w, "xmax\t%.6g\n", sc.XMax)
	fmt.Fprintf(w, "npoints\t%d\n", grid.Len())
	fmt.Fprintf(w, "spacing\t%.6g\n", grid.Spacing())
	fmt.Fprintf(w, "wavenumbers\t%.6g, %.6g\n", k1, k2)
	fmt.Fprintf(w, "omega\t%.6g, %.6g\n", w1, w2)
	fmt.Fprintf(w, "beat period\t%.6g\n", quantum.BeatPeriod(p))
	fmt.Fprintf(w, "max |psi|\t%.6g\n", p.MaxModulus())
	fmt.Fprintf(w, "steps\t%d\n", d.Steps())
	fmt.Fprintf(w, "time mode\t%s\n", cfg.Animation.TimeMode)
	fmt.Fprintf(w, "interval\t%s\n", cfg.PlotInterval())
	return w.Flush()
}

func analyzeFrame(cmd *cobra.Command, args []string) error {
	if peaks < 1 {
		return fmt.Errorf("--peaks must be at least 1, got %d", peaks)
	}
	ctx, cfg, grid, _, err := setup(cmd, "")
	if err != nil {
		return err
	}
	p := cfg.Params()
	x := grid.Positions()
	psi := quantum.NewSampler(p).Psi(x, at)

	bins := analysis.Spectrum(psi, grid.Spacing())
	logger.Debug(ctx, "spectrum computed", zap.Int("bins", len(bins)))
	k1, k2 := p.Wavenumbers()

	fmt.Printf("frame analysis at t = %g\n\n", at)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WAVENUMBER\tMAGNITUDE")
	for _, b := range analysis.Peaks(bins, peaks) {
		fmt.Fprintf(w, "%.6g\t%.4g\n", b.Wavenumber, b.Magnitude)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "expected\t%.6g, %.6g\n", k1, k2)
	fmt.Fprintf(w, "resolution\t%.6g\n", analysis.Resolution(len(psi), grid.Spacing()))

	expected := grid.Scales().EnvelopeWavelength
	if measured, ok := analysis.MeasuredEnvelope(x, psi); ok {
		fmt.Fprintf(w, "envelope\t%.6g (expected %.6g, error %.2g%%)\n",
			measured, expected, 100*math.Abs(measured-expected)/expected)
	} else {
		fmt.Fprintf(w, "envelope\tnone (expected %.6g)\n", expected)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDP/P\tM\tA\tB\tTMAX\tDT")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%s\t%g\t%g\n",
			name,
			c.Physics.DpOverP,
			c.Physics.M,
			formatComplex(c.Physics.A.Complex()),
			formatComplex(c.Physics.B.Complex()),
			c.Animation.TMax,
			c.Animation.Dt,
		)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "wavebeat.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func formatComplex(c complex128) string {
	if imag(c) == 0 {
		return fmt.Sprintf("%g", real(c))
	}
	return fmt.Sprintf("%.3g∠%.3g", cmplx.Abs(c), cmplx.Phase(c))
}
