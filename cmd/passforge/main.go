package main

import (
	"log/slog"
	"os"

	"github.com/passforge/passforge-go/internal/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := cli.Execute(); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
