package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/decidiag/internal/analysis"
	"github.com/san-kum/decidiag/internal/config"
	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/export"
	"github.com/san-kum/decidiag/internal/figure"
	"github.com/san-kum/decidiag/internal/server"
	"github.com/san-kum/decidiag/internal/viz"
)

var (
	configFile string
	preset     string
	theme      string
	verbose    bool
	logFile    string
	pFlag      float64
	cFlag      float64
	// render
	renderOut string
	width     int
	height    int
	// field
	fieldOut string
	// classify
	aFlag float64
	bFlag float64
	// sweep
	steps int
	// serve
	addr string

	logger *zap.Logger
)

// main registers commands and flags, launches the interactive TUI when no
// subcommand is provided, and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decidiag",
		Short: "interactive decision diagram for p(2a - c - b) > a - c",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters; params set in --config take precedence")
	pf.StringVar(&theme, "theme", "", "tui theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.Float64Var(&pFlag, "p", decision.DefaultP, "probability that the item is a real photo [0, 1]")
	pf.Float64Var(&cFlag, "c", decision.DefaultC, "cost of deception [-20, 0]")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal diagram",
		RunE:  runTUI,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the interactive page",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the diagram to a png or svg file",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "diagram.png", "output file (.png or .svg)")
	renderCmd.Flags().IntVar(&width, "width", 0, "image width in pixels (default from config)")
	renderCmd.Flags().IntVar(&height, "height", 0, "image height in pixels (default from config)")

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "classify a single (a, b) point",
		RunE:  runClassify,
	}
	classifyCmd.Flags().Float64Var(&aFlag, "a", 5, "reward for correct classification")
	classifyCmd.Flags().Float64Var(&bFlag, "b", 0, "payoff for omission")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot class shares over p at fixed c",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&steps, "steps", 101, "number of p values")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "write the class field as csv",
		RunE:  runField,
	}
	fieldCmd.Flags().StringVarP(&fieldOut, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tP\tC\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name,
					decision.SliderP.Format(p.Params.P), decision.SliderC.Format(p.Params.C), p.Description)
			}
			return w.Flush()
		},
	}

	explainCmd := &cobra.Command{
		Use:   "explain",
		Short: "explain the colors of the diagram",
		RunE:  runExplain,
	}

	rootCmd.AddCommand(tuiCmd, serveCmd, renderCmd, classifyCmd, sweepCmd, fieldCmd, presetsCmd, explainCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order. Keys set in the config file win over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if theme != "" {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("p") {
		cfg.Params.P = pFlag
	}
	if cmd.Flags().Changed("c") {
		cfg.Params.C = cFlag
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	cfg.Params = cfg.Params.Snapped()
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := logger
	if logFile == "" {
		// the TUI owns the terminal
		log = zap.NewNop()
	}
	return viz.Run(cfg.Params, cfg.Theme, log)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Addr:          cfg.Server.Addr,
		DefaultParams: cfg.Params,
		Width:         cfg.Figure.Width,
		Height:        cfg.Figure.Height,
	}, logger)
	fmt.Fprintf(cmd.OutOrStdout(), "open http://%s/\n", cfg.Server.Addr)
	return srv.ListenAndServe(ctx)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	grid := decision.NewGrid()
	fig := figure.New(decision.Classify(cfg.Params, grid), grid, cfg.Params)
	fig.Width, fig.Height = cfg.Figure.Width, cfg.Figure.Height
	if width > 0 {
		fig.Width = width
	}
	if height > 0 {
		fig.Height = height
	}

	if err := export.WriteFigure(renderOut, fig); err != nil {
		return err
	}
	logger.Info("figure written", zap.String("path", renderOut), zap.Stringer("params", cfg.Params))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", renderOut, cfg.Params)
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.Params

	lhs, rhs := decision.Sides(params.P, params.C, aFlag, bFlag)
	class := decision.ClassifyPoint(params, aFlag, bFlag)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "params\t%s\n", params)
	fmt.Fprintf(w, "point\ta=%g b=%g\n", aFlag, bFlag)
	fmt.Fprintf(w, "valid\t%t\n", decision.Valid(params.C, aFlag, bFlag))
	fmt.Fprintf(w, "lhs\t%.4f\n", lhs)
	fmt.Fprintf(w, "rhs\t%.4f\n", rhs)
	if pStar, ok := analysis.Threshold(params.C, aFlag, bFlag); ok {
		fmt.Fprintf(w, "threshold\tp > %.4f\n", pStar)
	}
	fmt.Fprintf(w, "class\t%d (%s)\n", class, class)
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	c := cfg.Params.C
	grid := decision.NewGrid()

	points := analysis.SweepP(c, grid, steps)
	accepted := analysis.Series(points, decision.Accepted)
	rejected := analysis.Series(points, decision.Rejected)

	graph := asciigraph.PlotMany([][]float64{accepted, rejected},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("share of accepted (green) and rejected (red) cells over p in [0, 1], c=%s",
			decision.SliderC.Format(c))),
	)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)

	report := analysis.CheckMonotone(c, grid, decision.Linspace(0, 1, steps))
	fmt.Fprintf(out, "monotone in p: %t (%d cells promoted, %d violations)\n",
		len(report.Violations) == 0, report.Promoted, len(report.Violations))
	for _, v := range report.Violations {
		fmt.Fprintf(out, "  a=%.3f b=%.3f p %.2f -> %.2f slope %.3f\n", v.A, v.B, v.From, v.To, v.Slope)
	}
	return nil
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	grid := decision.NewGrid()
	field := decision.Classify(cfg.Params, grid)

	if fieldOut == "" {
		return export.WriteFieldCSV(cmd.OutOrStdout(), grid, field)
	}
	f, err := os.Create(fieldOut)
	if err != nil {
		return err
	}
	if err := export.WriteFieldCSV(f, grid, field); err != nil {
		f.Close()
		return err
	}
	logger.Info("field written", zap.String("path", fieldOut), zap.Stringer("field", field))
	return f.Close()
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return err
	}
	out, err := r.Render(explainMarkdown(cfg.Params))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func explainMarkdown(params decision.Params) string {
	var b strings.Builder
	b.WriteString("# " + figure.Title + "\n\n")
	fmt.Fprintf(&b, "Current parameters: `%s`\n\n", params)
	b.WriteString("| color | class | meaning |\n|---|---|---|\n")
	for _, c := range []decision.Class{decision.Accepted, decision.Rejected, decision.Undefined} {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", figure.ClassColorNames[c], c, figure.LegendLabels[c])
	}
	b.WriteString("\n")
	for _, line := range figure.Annotation {
		b.WriteString("- " + line + "\n")
	}
	fmt.Fprintf(&b, "\nThe inequality is defined where b is in [-2, 2], c < 0, c < b - %g, a > 0 and a > b + %g.\n",
		decision.Epsilon, decision.Epsilon)
	return b.String()
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if configFile != "" {
		if fileCfg, err := config.Load(configFile); err == nil {
			if lvl, err := zap.ParseAtomicLevel(fileCfg.Log.Level); err == nil {
				cfg.Level = lvl
			}
		}
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
	}
	return cfg.Build(zap.Fields(zap.String("cmd", cmd.Name())))
}
