package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/anayd/sensei/cmd"
)

func main() {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
