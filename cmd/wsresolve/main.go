// Package main provides the wsresolve command-line interface.
// It lists the workspace packages of a JavaScript monorepo exactly as its
// package manager would discover them.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	// A .env file is optional; WSRESOLVE_* variables may also come from the shell.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}
