package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/pulse/internal/httpserver"
)

// runServer serves the dashboard until SIGINT or SIGTERM.
func runServer(cfg appConfig) error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewServer(cfg.APIAddr)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start web server: %w", err)
	}

	printStartupBanner(cfg, srv.Addr())
	log.Printf("pulse-web: listening on %s", srv.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("pulse-web: shutting down")
		return srv.Stop()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func printStartupBanner(cfg appConfig, addr string) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "    "+cyan.Bold(true).Render("Pulse")+" "+dim.Render("v"+version))
	lines = append(lines, "")

	separator := dim.Render("    ─────────────────────────────────")
	lines = append(lines, separator)
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Gateway"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("    %s  Dashboard      %s", check, cyan.Render("http://"+addr+"/")))
	lines = append(lines, fmt.Sprintf("    %s  Sidebar API    %s", check, cyan.Render("http://"+addr+"/api/sidebar")))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Config"))
	lines = append(lines, "")
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "")
	lines = append(lines, separator)
	lines = append(lines, "")
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"))
	lines = append(lines, "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
