// Command canteenco2 estimates the climate footprint of a canteen and
// recommends lower-impact menus and sourcing.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/rshade/canteenco2/internal/cli"
	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
	"github.com/rshade/canteenco2/pkg/version"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitInput    = 2
	exitNotFound = 3
)

func main() {
	// A .env file in the working directory is optional.
	_ = godotenv.Load()

	if err := run(); err != nil {
		os.Exit(exitCode(err))
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(context.Background())
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, impact.ErrValidation), errors.Is(err, sourcing.ErrInvalidMonth):
		return exitInput
	case errors.Is(err, factors.ErrNotFound):
		return exitNotFound
	default:
		return exitError
	}
}
