package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/tuisort/internal/config"
	"github.com/rileylov/tuisort/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML board definition")
	logPath := flag.String("log", "", "write the session event log to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if logPath == "" {
		logPath = cfg.LogFile
	}

	if logPath != "" {
		f, err := tea.LogToFile(logPath, "tuisort")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	zone.NewGlobal()

	p := tea.NewProgram(ui.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
