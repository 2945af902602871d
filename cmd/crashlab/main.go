package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/crashlab/internal/app"
	"github.com/vk/crashlab/internal/cli"
)

// main is the entrypoint for the crashlab demo binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[0], os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main program logic for easier testing and error
// handling. A run that trips a fault never returns; the process dies via
// the runtime's fault reporting.
func run(outW, errW io.Writer, progName string, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, progName, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	demo := app.NewApp(outW, errW, appConfig)
	return demo.Run(context.Background())
}
