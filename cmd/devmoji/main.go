package main

import (
	"github.com/haytac/devmoji/internal/cli"
	"github.com/haytac/devmoji/internal/logging"
)

func main() {
	// Basic logger for anything that runs before PersistentPreRunE
	// configures the real one from flags.
	logging.Setup(logging.Config{Level: "warn", TimeFormat: "15:04:05"})

	cli.Execute()
}
