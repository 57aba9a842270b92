package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/paystream/payproc/internal/engine"
	"github.com/paystream/payproc/internal/logging"
)

// newApp builds the CLI app. Output streams are injected so tests can
// capture them.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "payproc",
		Usage:     "a batch payments processor",
		UsageText: "payproc INPUT_PATH",
		Description: "Reads a CSV stream of deposits, withdrawals, disputes,\n" +
			"resolves and chargebacks, applies them in order to per-client\n" +
			"accounts, and prints the final balance snapshot to stdout.\n" +
			"Rejected records are reported on stderr and skipped.",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				fmt.Fprintf(stderr, "USAGE: %s INPUT_PATH\n", c.App.Name)
				return errors.New("incorrect number of arguments")
			}

			path := c.Args().First()
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cannot open file %q: %w", path, err)
			}
			defer f.Close()

			logger := logging.New()
			defer logger.Sync()

			return engine.New(logger).Run(f, stdout)
		},
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
