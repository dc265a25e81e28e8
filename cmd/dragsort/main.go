package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/idilsaglam/dragsort/internal/cli"
	"github.com/idilsaglam/dragsort/internal/shared"
	"github.com/idilsaglam/dragsort/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := cli.NewRunner(cli.RunnerOpts{})
	err := runner.Command().Run(ctx, os.Args)
	if err == nil {
		return
	}

	// Usage errors exit 2, everything else 1.
	if isUsageError(err) {
		ui.Fail(os.Stderr, ui.NewTheme(""), err.Error())
		os.Exit(2)
	}
	shared.NewLogger(nil).Fatalf("application error: %v", err)
}

func isUsageError(err error) bool {
	for _, target := range []error{shared.ErrInvalidArgument, shared.ErrMissingArgument, shared.ErrConfigExists} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
