package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/notedeck/notedeck/internal/app"
	"github.com/notedeck/notedeck/internal/config"
	"github.com/notedeck/notedeck/internal/errors"
	"github.com/notedeck/notedeck/internal/logger"
	"github.com/notedeck/notedeck/internal/notification"
	"github.com/notedeck/notedeck/internal/surface"
	"github.com/notedeck/notedeck/internal/ui"
)

var (
	configPath            string
	debugMode             bool
	quietMode             bool
	logPath               string
	openID                string
	themeName             string
	pickDocument          bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "notedeck",
	Short: "Switch between documents in a terminal dashboard",
	Long: `notedeck shows one document at a time from a configured collection.
The header menu switches between documents; every switch renders the new
document in a fresh, isolated surface.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.notedeck/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings only")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", logger.DefaultLogPath, "Log file")
	rootCmd.Flags().StringVarP(&openID, "open", "o", "", "Document to show first")
	rootCmd.Flags().StringVarP(&themeName, "theme", "t", "", "Color theme (see 'notedeck themes')")
	rootCmd.Flags().BoolVarP(&pickDocument, "pick", "p", false, "Choose the first document interactively")
}

func initConfig() {
	if quietMode {
		logger.SetLevel(logger.LevelWarn)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("notedeck %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("notedeck %s\n", version)
}

// loadConfig loads the file named by --config, or the default location.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.notedeck/config.yaml", err)
		}
		path = p
	}
	return config.Load(path)
}

// buildOptions turns the config and flags into app options.
func buildOptions(cfg *config.Config) (app.Options, error) {
	coll, err := cfg.Collection()
	if err != nil {
		return app.Options{}, err
	}

	theme := cfg.Theme
	if themeName != "" {
		theme = themeName
	}
	if theme != "" && !ui.IsTheme(theme) {
		return app.Options{}, errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", theme))
	}

	initial := cfg.Initial
	if openID != "" {
		initial = openID
	}

	policy := cfg.Policy()
	opts := app.Options{
		Title:      cfg.Title,
		Theme:      theme,
		Version:    version,
		Collection: coll,
		InitialID:  initial,
		Policy:     policy,
		Loader:     surface.NewLoader(cfg.BaseDir(), policy, cfg.LoadTimeout()),
	}
	if cfg.Notify {
		opts.Notify = notification.DocumentLoaded
	}
	return opts, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logPath); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	if pickDocument {
		id, err := pick(opts.Collection, opts.InitialID)
		if err != nil {
			return err
		}
		opts.InitialID = id
	}

	m := app.New(opts)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
