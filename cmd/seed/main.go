// Command seed fills the analytics database with synthetic GA4 and
// LinkedIn metrics for local development and demos.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
