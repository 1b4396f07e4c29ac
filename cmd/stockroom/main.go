// Command stockroom is the admin command line for the inventory API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stockroom/client/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		cli.PrintError(os.Stderr, err)
	}
	stop()
	os.Exit(cli.ExitCode(err))
}
