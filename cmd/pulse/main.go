package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/pulse/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var skin string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/pulse/config.yml)")
	flag.StringVar(&skin, "skin", "", "override the colour skin")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Pulse - Terminal Dashboard\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if skin != "" {
		cfg.Skin = skin
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	// The alt screen owns stdout, so logs go to a file or nowhere.
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "pulse")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	home, _ := os.UserHomeDir()
	configDir := filepath.Join(home, ".config", "pulse")
	if err := tui.InitializeSkin(cfg.Skin, configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
		log.Printf("pulse: skin %q: %v", cfg.Skin, err)
	}

	dashboard := tui.NewDashboardModel(tui.Options{
		Animations:         cfg.Animations,
		FrameRate:          cfg.FrameRate,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
	})
	app := tui.NewApp(tui.NewDashboardPage(dashboard))
	defer app.Close()

	log.Printf("pulse: starting (skin=%s animations=%v frame-rate=%d)", cfg.Skin, cfg.Animations, cfg.FrameRate)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
