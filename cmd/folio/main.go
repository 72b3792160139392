package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/gui"
	"github.com/san-kum/folio/internal/storage"
	"github.com/san-kum/folio/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	preset      string
	verbose     bool
	seed        int64
	theme       string
	section     string
	contentFile string
	// export
	format string
	ticks  int
	width  int
	height int
	sweep  bool
	light  bool
	// bench
	benchTicks int
	// config init
	force bool
)

// main registers the folio commands and runs the portfolio TUI when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "interactive terminal portfolio with a particle field",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPortfolio,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".folio", "data directory for saved preferences")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "field preset (see folio presets)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for particle placement (0 picks one)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "auto", "colour theme: auto, dark or light")

	rootCmd.Flags().StringVar(&section, "section", "", "section to open: home, about, projects, skills or contact")
	rootCmd.Flags().StringVar(&contentFile, "content", "", "portfolio content file (yaml), defaults to the built-in one")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "show the particle field alone in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(viz.Options{Config: cfg, Store: storage.New(dataDir), Logger: newLogger(),
				FieldOnly: true, ThemeSet: cmd.Flags().Changed("theme")})
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the particle field in a desktop window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&width, "width", 0, "window width (default from config)")
	guiCmd.Flags().IntVar(&height, "height", 0, "window height (default from config)")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "simulate headless and write an svg, png or gif",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "", "svg, png or gif (default from the file extension)")
	exportCmd.Flags().IntVar(&ticks, "ticks", 120, "frames to simulate")
	exportCmd.Flags().IntVar(&width, "width", 0, "image width (default from config)")
	exportCmd.Flags().IntVar(&height, "height", 0, "image height (default from config)")
	exportCmd.Flags().BoolVar(&sweep, "sweep", true, "sweep the pointer across the field")
	exportCmd.Flags().BoolVar(&light, "light", false, "light background")

	benchCmd := &cobra.Command{
		Use:   "bench [preset...]",
		Short: "benchmark presets headless and plot their motion",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 300, "ticks per preset")
	benchCmd.Flags().IntVar(&width, "width", 0, "field width (default from config)")
	benchCmd.Flags().IntVar(&height, "height", 0, "field height (default from config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list field presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Println("presets:")
			for _, n := range names {
				f := config.Presets[n].Field
				fmt.Printf("  %-8s density %-6.0f radius %-4.0f trail %d\n", n, f.DensityArea, f.PointerRadius, f.TrailLength)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a config file with the current settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(fieldCmd, guiCmd, exportCmd, benchCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "folio:", err)
		stop()
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadConfig builds the effective config: preset, then config file, then
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
	}

	if configFile != "" {
		var err error
		cfg, err = config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("theme") {
		cfg.Display.Theme = theme
	}
	if cmd.Flags().Changed("width") {
		cfg.Display.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Display.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c := content.Default()
	if contentFile != "" {
		if c, err = content.Load(contentFile); err != nil {
			return err
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	return viz.Run(viz.Options{Config: cfg, Content: c, Store: st, Logger: newLogger(),
		Section: section, ThemeSet: cmd.Flags().Changed("theme")})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	dark := viz.GetTheme(cfg.Display.Theme).Dark
	if prefs, err := st.Load(); err == nil && prefs.DarkMode != nil && !cmd.Flags().Changed("theme") {
		dark = *prefs.DarkMode
	}
	return gui.NewApp(gui.Options{Config: cfg, Store: st, Logger: newLogger(), Dark: dark}).Run()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	name := format
	if name == "" {
		name = path
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	bg, err := config.ParseHex(string(viz.ThemeFor(!light).Background))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	opts := export.Options{
		Format:     f,
		Params:     cfg.FieldParams(),
		Viewport:   field.Viewport{Width: float64(cfg.Display.Width), Height: float64(cfg.Display.Height)},
		Background: bg,
		Ticks:      ticks,
		FPS:        cfg.Display.FPS,
		Sweep:      sweep,
		Logger:     newLogger(),
	}
	if err := export.Run(out, opts); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, %dx%d, %d ticks)\n", path, f, cfg.Display.Width, cfg.Display.Height, ticks)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "folio.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
