package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cbrfetcher/internal/config"
	"cbrfetcher/internal/coordinator"
)

func main() {
	outDir := flag.String("out-dir", "", "output directory (defaults to the configured one)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	path, err := coordinator.New(cfg, nil).Run(ctx)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	fmt.Printf("Saved: %s\n", path)
}
