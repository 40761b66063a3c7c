package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/formkit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	code := cli.ExitCode(err)
	if code > 1 {
		fmt.Fprintf(os.Stderr, "formcheck: %v\n", err)
	}
	os.Exit(code)
}
