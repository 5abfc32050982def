package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/api-sage/banco-portal/src/internal/cli"
	"github.com/api-sage/banco-portal/src/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	logger.Sync()
	os.Exit(code)
}
