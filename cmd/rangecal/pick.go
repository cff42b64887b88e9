package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rangecal/rangecal/internal/components"
	"github.com/rangecal/rangecal/internal/config"
	"github.com/rangecal/rangecal/internal/engine"
	"github.com/rangecal/rangecal/internal/logger"
	"github.com/rangecal/rangecal/internal/tui/picker"
)

type pickFlags struct {
	configPath string
	minDate    string
	maxDate    string
	start      string
	end        string
	theme      string
}

func newPickFlags() *pickFlags {
	return &pickFlags{}
}

func newPickCmd(root *rootFlags) *cobra.Command {
	flags := newPickFlags()

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, flags, root)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a rangecal config file")
	cmd.Flags().StringVar(&flags.minDate, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.maxDate, "max", "", "Latest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.start, "start", "", "Initial range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.end, "end", "", "Initial range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Colour theme: default, dark or light")

	return cmd
}

func runPick(cmd *cobra.Command, flags *pickFlags, root *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, root)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		return fmt.Errorf("the interactive picker needs a terminal; use %q for non-interactive output", "rangecal grid")
	}

	components.SetTheme(components.ThemeByName(cfg.Theme))

	eng := engine.New(engine.Options{
		DefaultValue: cfg.Range(),
		Constraints:  cfg.Constraints(),
		OnChange: func(r engine.DateRange) {
			log.WithFields(map[string]any{"range": r.String()}).Debug("range committed")
		},
	})
	if eng.Constraints().Inverted() {
		log.Warn("min_date is after max_date; every cell will be disabled")
	}

	log.Debug("starting picker")
	final, err := tea.NewProgram(picker.New(eng), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	model, ok := final.(picker.Model)
	if !ok || model.Committed() == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no selection")
		return nil
	}

	committed := model.Committed()
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
		committed.Start.Format(config.DateFormat),
		committed.End.Format(config.DateFormat))
	return nil
}

// loadConfig reads the config file when one is given and layers the command
// line flags on top, then re-validates the merged result.
func loadConfig(flags *pickFlags) (*config.Config, error) {
	cfg := &config.Config{}
	if flags.configPath != "" {
		loaded, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.minDate != "" {
		cfg.MinDate = flags.minDate
	}
	if flags.maxDate != "" {
		cfg.MaxDate = flags.maxDate
	}
	if flags.start != "" {
		cfg.DefaultRange.Start = flags.start
	}
	if flags.end != "" {
		cfg.DefaultRange.End = flags.end
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, root *rootFlags) (*logger.Logger, error) {
	level := cfg.LogLevel
	if root.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
