package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/vk/ganttline/internal/app"
	"github.com/vk/ganttline/internal/cli"
	"github.com/vk/ganttline/internal/render"
)

// main is the entrypoint for the ganttline application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// A .env file may supply defaults (GANTTLINE_LOG_LEVEL etc.); absence is fine.
	_ = godotenv.Load()

	if err := run(os.Stderr, argsWithEnvDefaults(os.Args[1:])); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// argsWithEnvDefaults prepends flag defaults taken from the environment so
// explicit command-line flags still win.
func argsWithEnvDefaults(args []string) []string {
	var prefix []string
	if v := os.Getenv("GANTTLINE_LOG_LEVEL"); v != "" {
		prefix = append(prefix, "--log-level", v)
	}
	if v := os.Getenv("GANTTLINE_LOG_FORMAT"); v != "" {
		prefix = append(prefix, "--log-format", v)
	}
	return append(prefix, args...)
}

// run encapsulates the main application logic for easier testing and error handling.
func run(errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader, docPath, err := app.ResolveLoader(appConfig.ProjectPath)
	if err != nil {
		return err
	}
	appConfig.ProjectPath = docPath

	theme := render.DefaultTheme()
	if appConfig.ThemePath != "" {
		theme, err = render.LoadTheme(appConfig.ThemePath)
		if err != nil {
			return err
		}
	}

	ganttlineApp := app.NewApp(errW, appConfig, loader, render.NewSVG(theme))
	return ganttlineApp.Run(context.Background())
}
