package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/u404/internal/infrastructure/cli"
)

func main() {
	ctx := newContext()

	root := cli.NewRootCmd(ctx, cli.Options{Verbose: isVerbose()})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newContext returns the root context. Interrupts keep the default process
// behaviour so Ctrl-C ends a shell blocked on input.
func newContext() context.Context {
	return context.Background()
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("U404_DEBUG"), "1") || strings.EqualFold(os.Getenv("U404_DEBUG"), "true")
}
