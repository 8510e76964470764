// Command gridpath runs, compares and interactively replays grid shortest-path
// searches.
//
//	gridpath run --algo astar --config grid.yaml --animate
//	gridpath compare --config grid.yaml
//	gridpath play --metrics-addr :9090
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
