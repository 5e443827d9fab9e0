package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/cityweather/backend/internal/cli"
	"github.com/cityweather/backend/internal/config"
)

func main() {
	// a missing .env is normal for the CLI, so skip config.Load's log line
	_ = godotenv.Load()
	cmd := cli.NewRootCmd(config.FromEnv())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
