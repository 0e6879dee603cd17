package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasks-api/internal/cli"
)

func main() {
	// Cancelled on SIGINT/SIGTERM so serve can shut down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand()
	if err := root.Command().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
