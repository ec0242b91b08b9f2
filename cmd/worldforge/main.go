// Worldforge — main entry point.
// Kept deliberately thin: load ambient config, wire up the service, run
// the CLI, exit with its code.
package main

import (
	"os"
	"time"

	"worldforge/internal/cli"
	"worldforge/internal/dice"
	"worldforge/internal/shared/config"
	"worldforge/internal/shared/logger"
	"worldforge/internal/world"
)

func main() {
	cfg := config.Load()
	log := logger.Init(cfg)

	svc := world.NewService(dice.New(time.Now().UnixNano()), log)
	os.Exit(cli.Execute(svc, os.Stdout, os.Stderr, os.Args[1:]))
}
