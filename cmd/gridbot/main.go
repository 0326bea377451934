package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/evogt/gridbot/cmd/gridbot/cmd"
)

func main() {
	// Optional .env for GRIDBOT_* overrides; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
