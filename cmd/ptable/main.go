package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/config"
	"github.com/san-kum/ptable/internal/export"
	"github.com/san-kum/ptable/internal/filter"
	"github.com/san-kum/ptable/internal/orbit"
	"github.com/san-kum/ptable/internal/palette"
	"github.com/san-kum/ptable/internal/tui"
)

var (
	configFile string
	themeName  string
	preset     string
	seed       int64
	renderer   string
	logFile    string

	search   string
	category string
	frames   int
	fps      int
	outFile  string
	scale    float64
	force    bool
	all      bool
	outDir   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ptable",
		Short:         "interactive periodic table with orbit visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&themeName, "theme", "", "theme (dark, light)")
	pf.StringVar(&preset, "preset", "", "orbit preset")
	pf.Int64Var(&seed, "seed", 0, "random seed for orbit tilt and phase (0 = time based)")
	pf.StringVar(&renderer, "renderer", "", "orbit renderer (braille, none)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list elements",
		RunE:  listElements,
	}
	listCmd.Flags().StringVar(&search, "search", "", "filter by name, symbol or number")
	listCmd.Flags().StringVar(&category, "category", filter.All, "filter by category")

	showCmd := &cobra.Command{
		Use:   "show [element]",
		Short: "show element details and its atom",
		Args:  cobra.ExactArgs(1),
		RunE:  showElement,
	}
	showCmd.Flags().IntVar(&frames, "frames", 0, "frames to animate (0 = still, -1 = until ctrl+c)")
	showCmd.Flags().IntVar(&fps, "fps", 0, "frame rate for the animation (default from config)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [element]",
		Short: "render the atom to an SVG file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshotElement,
	}
	snapshotCmd.Flags().StringVar(&outFile, "out", "", "output file (default <symbol>.svg)")
	snapshotCmd.Flags().IntVar(&frames, "frames", 0, "frames to advance before the snapshot")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 4, "pixels per braille dot")
	snapshotCmd.Flags().BoolVar(&all, "all", false, "render every element matching --search/--category")
	snapshotCmd.Flags().StringVar(&outDir, "dir", "snapshots", "output directory for --all")
	snapshotCmd.Flags().StringVar(&search, "search", "", "filter by name, symbol or number (--all)")
	snapshotCmd.Flags().StringVar(&category, "category", filter.All, "filter by category (--all)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot atomic mass against atomic number",
		RunE:  plotMasses,
	}
	plotCmd.Flags().StringVar(&search, "search", "", "filter by name, symbol or number")
	plotCmd.Flags().StringVar(&category, "category", filter.All, "filter by category")
	plotCmd.Flags().StringVar(&outFile, "out", "", "also write the chart as SVG")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range palette.ThemeNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list orbit presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "  %s\t%d shells\t%s\n", name, p.ElectronCap, config.DescribePreset(name))
			}
			w.Flush()
		},
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "list categories with element counts",
		RunE:  listCategories,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(listCmd, showCmd, snapshotCmd, plotCmd, themesCmd, presetsCmd, categoriesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, .env, PTABLE_* variables
// and finally explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := config.LoadEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("renderer") {
		cfg.Renderer = renderer
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if preset != "" {
		if err := cfg.UsePreset(preset); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to the config's log file when set, else to fallback.
// The returned closer must be called on exit.
func newLogger(cfg *config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, func() { f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "ptable",
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
	if os.Getenv("PTABLE_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

func newHost(cfg *config.Config, logger *log.Logger) *orbit.Host {
	return orbit.NewHost(cfg.Orbit,
		orbit.WithLogger(logger),
		orbit.WithRand(rand.New(rand.NewSource(cfg.SeedOrNow()))),
		orbit.WithSurfaceFactory(cfg.SurfaceFactory()),
		orbit.WithTheme(cfg.ThemeValue()),
	)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// bubbletea owns the terminal, so logs are dropped unless a file is set.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "theme", cfg.Theme, "renderer", cfg.Renderer, "fps", cfg.FPS)
	return tui.Run(tui.Options{
		Catalog:       catalog.Default(),
		Host:          newHost(cfg, logger),
		Theme:         cfg.ThemeValue(),
		FrameInterval: cfg.FrameInterval(),
		Logger:        logger,
	})
}

func filtered(cat *catalog.Catalog) ([]catalog.Element, error) {
	f := filter.New()
	f.Query = search
	if category != "" {
		opts := filter.Categories(cat)
		ok := false
		for _, o := range opts {
			if strings.EqualFold(o, category) {
				ok = true
			}
		}
		if !ok {
			return nil, fmt.Errorf("unknown category %q (see ptable categories)", category)
		}
		f.Category = category
	}
	return f.Apply(cat.All()), nil
}

func listElements(cmd *cobra.Command, args []string) error {
	elements, err := filtered(catalog.Default())
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		fmt.Println("no elements found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUM\tSYMBOL\tNAME\tMASS\tCATEGORY\tBLOCK\tGROUP\tPERIOD\tSTATE")
	for _, e := range elements {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			e.AtomicNumber,
			e.Symbol,
			e.Name,
			e.AtomicMass,
			e.DisplayCategory(),
			e.Block,
			e.DisplayGroup(),
			e.Period,
			e.State,
		)
	}
	return w.Flush()
}

func listCategories(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range filter.Categories(cat) {
		f := filter.New()
		f.Category = c
		fmt.Fprintf(w, "  %s\t%s\t%d\n", c, filter.Label(c), len(f.Apply(cat.All())))
	}
	return w.Flush()
}

func printElement(e catalog.Element) {
	fmt.Printf("%s (%s)  #%d", e.Name, e.Symbol, e.AtomicNumber)
	if e.Radioactive() {
		fmt.Print("  ☢")
	}
	fmt.Println()
	fmt.Printf("  mass      %s\n", e.AtomicMass)
	fmt.Printf("  category  %s\n", e.Category)
	fmt.Printf("  block     %s   group %s   period %d\n", e.Block, e.DisplayGroup(), e.Period)
	fmt.Printf("  state     %s\n", e.State)
	fmt.Printf("  config    %s\n", e.ElectronConfiguration)
	fmt.Printf("  found     %s by %s\n", catalog.FormatYear(e.YearDiscovered), e.DiscoveredBy)
	if len(e.Uses) > 0 {
		fmt.Printf("  uses      %s\n", strings.Join(e.Uses, ", "))
	}
	fmt.Println()
}

func showElement(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	e, err := catalog.Default().Find(args[0])
	if err != nil {
		return err
	}

	host := newHost(cfg, logger)
	defer host.Unmount()
	session := host.Mount(orbit.SubjectOf(e))

	if frames == 0 || !session.Animated() {
		printElement(e)
		fmt.Println(host.View())
		if r := session.Reason(); r != nil {
			logger.Warn("showing badge", "reason", r)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	live := tui.NewLiveRenderer(os.Stdout, fmt.Sprintf("%s  %s", e.Symbol, e.Name), "ctrl+c to stop")
	live.Start()
	defer live.Stop()

	err = host.Run(ctx, cfg.FrameInterval(), func(frame string) {
		live.Draw(frame)
		if frames > 0 && live.Frames() > frames {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Debug("animation stopped", "frames", session.Frames())
	return err
}

func snapshotElement(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := export.SnapshotOptions{Orbit: cfg.Orbit, Theme: cfg.ThemeValue(), Frames: frames, Scale: scale}
	cat := catalog.Default()

	if all {
		return snapshotAll(cmd.Context(), cat, cfg, opts, logger)
	}
	if len(args) != 1 {
		return fmt.Errorf("snapshot needs an element or --all")
	}

	e, err := cat.Find(args[0])
	if err != nil {
		return err
	}
	svg, err := export.Render(orbit.SubjectOf(e), rand.New(rand.NewSource(cfg.SeedOrNow())), opts)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = e.Symbol + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("snapshot written", "element", e.Symbol, "path", path, "frames", frames)
	return nil
}

func snapshotAll(ctx context.Context, cat *catalog.Catalog, cfg *config.Config, opts export.SnapshotOptions, logger *log.Logger) error {
	elements, err := filtered(cat)
	if err != nil {
		return err
	}
	subjects := make([]orbit.Subject, len(elements))
	for i, e := range elements {
		subjects[i] = orbit.SubjectOf(e)
	}

	snaps, err := export.RenderAll(ctx, subjects, cfg.SeedOrNow(), opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for _, s := range snaps {
		path := filepath.Join(outDir, fmt.Sprintf("%03d-%s.svg", s.Subject.AtomicNumber, s.Subject.Symbol))
		if err := os.WriteFile(path, []byte(s.SVG), 0644); err != nil {
			return err
		}
	}
	logger.Info("snapshots written", "count", len(snaps), "dir", outDir)
	return nil
}

func plotMasses(cmd *cobra.Command, args []string) error {
	elements, err := filtered(catalog.Default())
	if err != nil {
		return err
	}
	if len(elements) < 2 {
		return fmt.Errorf("need at least two elements to plot, have %d", len(elements))
	}

	data := make([]float64, len(elements))
	points := make([]export.Point, len(elements))
	for i, e := range elements {
		data[i] = e.Mass()
		points[i] = export.Point{X: float64(e.AtomicNumber), Y: e.Mass(), Label: e.Symbol}
	}

	first, last := elements[0], elements[len(elements)-1]
	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("atomic mass, %s (%d) to %s (%d)", first.Symbol, first.AtomicNumber, last.Symbol, last.AtomicNumber)),
	)
	fmt.Println(graph)

	if outFile != "" {
		svg := export.SeriesToSVG(points, 800, 400, palette.ThemeDark.Primary)
		if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwritten %s\n", outFile)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists, use --force to overwrite", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
