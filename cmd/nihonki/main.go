// nihonki is a terminal flashcard drill for Japanese vocabulary lessons.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jovid18/nihonki/internal/lesson"
	"github.com/jovid18/nihonki/internal/logging"
	"github.com/jovid18/nihonki/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flags)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if help, _ := flags.GetBool("help"); help {
		printHelp(flags)
		return
	}

	if showVersion, _ := flags.GetBool("version"); showVersion {
		fmt.Printf("nihonki - Vocabulary Drill\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	log, flush, err := logging.New(logging.Config{Level: cfg.LogLevel, File: logFile})
	if err != nil {
		return err
	}
	defer flush()

	source, err := lesson.NewSource(cfg.Source, cfg.RequestTimeout, log)
	if err != nil {
		return err
	}

	log.Info("starting",
		zap.String("version", version),
		zap.String("source", cfg.Source),
		zap.String("config", cfg.ConfigPath),
	)

	zones := zone.New()
	app := tui.New(tui.Deps{
		Source:  source,
		Keys:    cfg.Keys,
		Log:     log,
		Zones:   zones,
		Seed:    cfg.Seed,
		Timeout: cfg.RequestTimeout,
	}, cfg.Lesson)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("nihonki requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func printHelp(flags *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `nihonki drills the words of a vocabulary lesson until each one is
answered correctly. Missed words go to the back of the queue.

Lessons are read from a directory of <id>.json / <id>.yaml files, or from
a nihonki-server (or the static lesson site) when --source is a URL.

Usage:
  nihonki [flags]

Flags:
%s
Every flag can also be set in the config file or as NIHONKI_<FLAG>,
e.g. NIHONKI_SOURCE=https://example.com/nihonki.
`, flags.FlagUsages())
}
