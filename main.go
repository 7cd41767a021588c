package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/lstpsche/openmeteo-cli/cmd"
)

func main() {
	// Pick up OPENMETEO_* variables from a .env file when present; a
	// missing file is the normal case.
	_ = godotenv.Load()

	os.Exit(cmd.Execute())
}
