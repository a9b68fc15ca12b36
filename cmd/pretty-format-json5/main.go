package main

import (
	"context"
	"errors"
	"os"

	"github.com/mpyw/prettyjson5/internal/cli/commands"
	"github.com/mpyw/prettyjson5/internal/cli/output"
)

func main() {
	err := commands.App.Run(context.Background(), os.Args)

	var statusErr *commands.StatusError

	switch {
	case err == nil:
	case errors.As(err, &statusErr):
		os.Exit(statusErr.Status)
	default:
		output.Error(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
