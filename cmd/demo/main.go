package main

import (
	"fmt"
	"os"

	"mini-shop/internal/config"
	"mini-shop/internal/demo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so stdout carries only the walkthrough
	logger := config.NewLogger(cfg.Logger, os.Stderr)

	return demo.Run(os.Stdout, logger)
}
