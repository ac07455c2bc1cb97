// Command star implements the STAR command surface: encode, index, and
// replay over the four columnar codecs in github.com/starcodec/star.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "star: failed to initialize logger:", err)
		return 1
	}
	defer logger.Sync()

	app := &cli.App{
		Name:  "star",
		Usage: "encode, index, and replay STAR columnar blobs",
		Commands: []*cli.Command{
			encodeCommand(logger),
			indexCommand(logger),
			replayCommand(logger),
		},
	}

	if err := app.Run(args); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, "star:", uerr.Error())
			return 2
		}

		logger.Error("command failed", zap.Error(err))
		return 1
	}

	return 0
}
