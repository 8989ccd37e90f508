package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/loupedev/loupe/internal/config"
	"github.com/loupedev/loupe/internal/page"
	"github.com/loupedev/loupe/internal/prefs"
	"github.com/loupedev/loupe/internal/store"
	"github.com/loupedev/loupe/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
	dataDir string

	logger     *log.Logger
	cfg        *config.Config
	cfgPath    string
	kv         *store.KV
	themes     *ui.ThemeProvider
	renderer   *page.Renderer
	controller *prefs.Controller
)

var rootCmd = &cobra.Command{
	Use:   "loupe",
	Short: "View pages in the terminal with live display preferences",
	Long: ui.Banner() + `
loupe renders documents in the terminal and lets you tune how they
look: text size, theme, link highlighting, readable layout, and image
visibility. Preferences persist across runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initRuntime()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if kv != nil {
			if err := kv.Close(); err != nil {
				logger.Warn("closing preferences store", "error", err)
			}
			kv = nil
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

// initRuntime loads config, opens the preferences store, and wires the
// controller to the renderer and theme provider.
func initRuntime() error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfgPath = path

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("config invalid, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	themes = ui.NewThemeProvider(cfg.UI.Theme, cfg.UI.NoColor || noColor, func(mode string) error {
		cfg.UI.Theme = mode
		return cfg.Save(cfgPath)
	})
	setupLogger()

	dir := dataDir
	if dir == "" {
		dir, err = cfg.DataDir()
		if err != nil {
			return err
		}
	}
	kv, err = store.Open(dir)
	if err != nil {
		return fmt.Errorf("opening preferences store: %w", err)
	}

	renderer = page.NewRenderer()
	if cfg.Viewer.Width > 0 {
		renderer.SetWidth(cfg.Viewer.Width)
	} else {
		renderer.SetWidth(ui.TerminalWidth())
	}

	controller, err = prefs.NewController(store.NewPrefs(kv, logger), renderer, themes, logger)
	if err != nil {
		return err
	}
	return nil
}

func runRootTUI() error {
	menuItems := []ui.MenuItem{
		{ID: "preview", TitleText: "Preview", Details: "Render the sample page with the current preferences"},
		{ID: "prefs", TitleText: "Preferences", Details: "Open the display preferences panel"},
		{ID: "show", TitleText: "Show", Details: "Print the stored preferences record"},
		{ID: "reset", TitleText: "Reset", Details: "Restore defaults and the system theme"},
		{ID: "exit", TitleText: "Exit", Details: "Close loupe"},
	}

	for {
		rec := controller.Record()
		choice, err := ui.RunMenuWithOptions("LOUPE", "Choose an action to continue.", menuItems,
			ui.WithInfoLines(
				fmt.Sprintf("text size  %d", rec.FontSize),
				fmt.Sprintf("theme      %s", themes.Theme()),
				fmt.Sprintf("links      %s", onOff(rec.HighlightLinks)),
				fmt.Sprintf("readable   %s", onOff(rec.ReadableFont)),
				fmt.Sprintf("images     %s", onOff(!rec.HideImages)),
			))
		if err != nil {
			return runRootFallback()
		}

		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}

		if err := runRootChoice(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}

		if choice != "prefs" {
			if err := waitForEnter("Press enter to return to loupe"); err != nil {
				return err
			}
		}
	}
}

func runRootChoice(choice string) error {
	switch choice {
	case "preview":
		ui.StartScreen("PREVIEW", "The sample page, rendered with your preferences.")
		fmt.Println(renderer.Render(page.Sample()))
		return nil
	case "prefs":
		return prefsCmd.RunE(prefsCmd, []string{})
	case "show":
		return prefsShowCmd.RunE(prefsShowCmd, []string{})
	case "reset":
		return prefsResetCmd.RunE(prefsResetCmd, []string{})
	case "exit", ui.MenuActionQuit, ui.MenuActionBack, "":
		return nil
	default:
		return nil
	}
}

func runRootFallback() error {
	ui.StartScreen("LOUPE", "Choose an action to continue.")
	var fallbackChoice string
	fallbackErr := huh.NewSelect[string]().
		Title("loupe").
		Description("What would you like to do?").
		Options(
			huh.NewOption("Preview", "preview"),
			huh.NewOption("Preferences", "prefs"),
			huh.NewOption("Show", "show"),
			huh.NewOption("Reset", "reset"),
			huh.NewOption("Exit", "exit"),
		).
		Value(&fallbackChoice).
		WithTheme(ui.HuhTheme()).
		Run()
	if fallbackErr != nil {
		if errors.Is(fallbackErr, huh.ErrUserAborted) {
			return nil
		}
		return fallbackErr
	}
	return runRootChoice(fallbackChoice)
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the preferences database")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
