package main

import (
	"os"

	"github.com/SpinningVinyl/xltools/internal/cmd"
	"github.com/SpinningVinyl/xltools/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Flag errors surface before the logger is configured; Init is
		// idempotent so this is safe either way.
		logger.Init("info")
		logger.Error("xltools failed", err)
		os.Exit(2)
	}
}
