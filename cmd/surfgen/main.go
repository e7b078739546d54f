// surfgen CLI entry point.
package main

import (
	"github.com/joho/godotenv"

	"github.com/matgen-io/surfgen/internal/interfaces/cli"
)

func main() {
	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()
	cli.Execute()
}
