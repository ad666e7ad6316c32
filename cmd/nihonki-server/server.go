package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jovid18/nihonki/internal/httpserver"
	"github.com/jovid18/nihonki/internal/lesson"
	"github.com/jovid18/nihonki/internal/logging"
)

func runServer(cfg serverConfig) error {
	log, flush, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer flush()

	info, err := os.Stat(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("lesson directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("lesson directory %s is not a directory", cfg.DataDir)
	}

	source := lesson.NewDirSource(cfg.DataDir, log)
	srv := httpserver.NewServer(cfg.APIAddr, source, log)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting http server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printStartupBanner(cfg, srv.Addr())
	log.Info("serving lessons",
		zap.String("addr", srv.Addr()),
		zap.String("dir", cfg.DataDir),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Serve)
	g.Go(func() error {
		<-gctx.Done()
		fmt.Println("\nShutting down gracefully...")
		return srv.Stop(cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}

func printStartupBanner(cfg serverConfig, addr string) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rose := lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "    "+rose.Bold(true).Render("日本記  nihonki-server"))
	lines = append(lines, "    "+dim.Render("v"+version))
	lines = append(lines, "")

	separator := dim.Render("    ─────────────────────────────────")
	lines = append(lines, separator, "")

	lines = append(lines, bold.Render("    Serving"), "")
	lines = append(lines, fmt.Sprintf("    %s  HTTP API       %s", check, rose.Render("http://"+addr)))
	lines = append(lines, fmt.Sprintf("    %s  Lessons        %s", check, dim.Render(shortenPath(cfg.DataDir))))
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "", separator, "")
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
