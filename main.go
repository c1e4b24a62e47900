package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Attamusc/git-standup/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	os.Exit(cmd.ExitCode(err, os.Stderr))
}
