// Package main provides the CLI entrypoint for tuipass.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuipass/internal/clipboard"
	"github.com/verte-zerg/tuipass/internal/config"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/stats"
	"github.com/verte-zerg/tuipass/internal/store"
	"github.com/verte-zerg/tuipass/internal/strength"
	"github.com/verte-zerg/tuipass/internal/tui"
)

const (
	defaultLength    = 12
	defaultMinLength = 4
	defaultMaxLength = 32
	defaultCount     = 1
	defaultRecent    = 10
)

var (
	genLength    int
	genMinLength int
	genMaxLength int
	genUpper     bool
	genLower     bool
	genNumbers   bool
	genSymbols   bool
	noHistory    bool
	verbose      bool

	generateCount    int
	generateStrength bool

	statsLast   int
	statsSince  string
	statsRecent int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "tuipass",
		Short:             "TUI password generator",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogging,
		RunE:              runTUICmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&genLength, "length", defaultLength, "password length (the TUI limits it to the slider bounds)")
	flags.IntVar(&genMinLength, "min-length", defaultMinLength, "lower bound of the length slider")
	flags.IntVar(&genMaxLength, "max-length", defaultMaxLength, "upper bound of the length slider")
	flags.BoolVar(&genUpper, "uppercase", true, "include uppercase letters")
	flags.BoolVar(&genLower, "lowercase", true, "include lowercase letters")
	flags.BoolVar(&genNumbers, "numbers", true, "include digits")
	flags.BoolVar(&genSymbols, "symbols", true, "include symbols")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record copies in the history database")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setupLogging(_ *cobra.Command, _ []string) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("verbosity up")
	}
	return nil
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if noHistory {
		cfg.History = false
	}

	logFile, err := openLogFile(config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close log file")
		}
	}()
	tuiLog := zerolog.New(logFile).With().Timestamp().Str("component", "tui").Logger()

	var rec tui.Recorder
	if cfg.History {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			log.Warn().Err(err).Msg("history disabled: failed to open db")
		} else {
			defer func() {
				if cerr := st.Close(); cerr != nil {
					log.Warn().Err(cerr).Msg("failed to close db")
				}
			}()
			rec = st
		}
	}

	m := tui.NewModel(cfg, generator.New(), clipboard.NewSystem(), rec, tuiLog)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print passwords without the TUI",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVarP(&generateCount, "count", "n", defaultCount, "number of passwords")
	cmd.Flags().BoolVar(&generateStrength, "strength", false, "append strength label and score")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// The slider bounds only constrain the TUI.
	if cfg.Length < 0 {
		return fmt.Errorf("--length must be >= 0")
	}
	if generateCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	passwords, err := generator.New().GenerateN(cfg.Request(), generateCount)
	if err != nil {
		if errors.Is(err, generator.ErrNoCharacterClass) {
			return fmt.Errorf("%w (enable --uppercase, --lowercase, --numbers or --symbols)", err)
		}
		return fmt.Errorf("failed to generate password: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, pw := range passwords {
		line := pw
		if generateStrength {
			rating := strength.Score(pw)
			line = fmt.Sprintf("%s\t%s (%d)", pw, rating.Label, rating.Score)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	log.Debug().
		Int("count", len(passwords)).
		Int("length", cfg.Length).
		Strs("classes", classNames(cfg.Request())).
		Msg("generated passwords")
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show copy history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to the last N copies")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsRecent, "recent", defaultRecent, "rows in the recent copies table")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	filter := model.HistoryFilter{Last: statsLast}
	if statsSince != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close db")
		}
	}()

	report, err := stats.LoadReport(context.Background(), st, filter)
	if err != nil {
		return err
	}
	return stats.RenderReport(cmd.OutOrStdout(), report, statsRecent)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		log.Info().Str("path", path).Msg("created config")
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig merges the config file under the flags; explicitly set flags win.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return mergeConfig(cmd, fileCfg), nil
}

func mergeConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	applyIntConfig(cmd, "length", &genLength, fileCfg.Generator.Length)
	applyIntConfig(cmd, "min-length", &genMinLength, fileCfg.Generator.MinLength)
	applyIntConfig(cmd, "max-length", &genMaxLength, fileCfg.Generator.MaxLength)
	applyBoolConfig(cmd, "uppercase", &genUpper, fileCfg.Generator.Uppercase)
	applyBoolConfig(cmd, "lowercase", &genLower, fileCfg.Generator.Lowercase)
	applyBoolConfig(cmd, "numbers", &genNumbers, fileCfg.Generator.Numbers)
	applyBoolConfig(cmd, "symbols", &genSymbols, fileCfg.Generator.Symbols)

	history := true
	if fileCfg.History.Enabled != nil {
		history = *fileCfg.History.Enabled
	}

	return model.Config{
		Length:    genLength,
		MinLength: genMinLength,
		MaxLength: genMaxLength,
		Uppercase: genUpper,
		Lowercase: genLower,
		Numbers:   genNumbers,
		Symbols:   genSymbols,
		History:   history,
	}
}

func classNames(req model.Request) []string {
	classes := req.Classes()
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.String())
	}
	return names
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.MinLength < 0 {
		return fmt.Errorf("--min-length must be >= 0")
	}
	if cfg.MaxLength < cfg.MinLength {
		return fmt.Errorf("--max-length must be >= --min-length")
	}
	if cfg.Length < cfg.MinLength || cfg.Length > cfg.MaxLength {
		return fmt.Errorf("--length must be between %d and %d", cfg.MinLength, cfg.MaxLength)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuipass configuration
# Uncomment a value to enable it. CLI flags override config values.

[generator]
# length = %d          # Initial password length
# min-length = %d       # Lower bound of the length slider
# max-length = %d      # Upper bound of the length slider
# uppercase = true      # Include A-Z
# lowercase = true      # Include a-z
# numbers = true        # Include 0-9
# symbols = true        # Include !@#$%%^&*()-_=+[]{}|;:,.<>?/

[history]
# enabled = true        # Record copied password metadata (never the password)
`,
		defaultLength,
		defaultMinLength,
		defaultMaxLength,
	)
}
