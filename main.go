package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-local/internal"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Two-player tic-tac-toe in the browser or the terminal",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game board over HTTP",
	RunE: func(_ *cobra.Command, _ []string) error {
		conf := config.MustLoad(configPath)

		return app.RunApp(initLogger(conf, os.Stdout), conf)
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in this terminal",
	RunE: func(_ *cobra.Command, _ []string) error {
		conf := config.MustLoad(configPath)

		// stdout belongs to the board
		return app.RunTerminal(initLogger(conf, os.Stderr), conf)
	},
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "path to config.yml")
	rootCmd.AddCommand(serveCmd, playCmd)
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, "./config.yml")
}

// initialize logger.
func initLogger(conf *config.Config, w *os.File) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
