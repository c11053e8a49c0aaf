// Package main provides the entry point for the budget-prep CLI application.
package main

import (
	"os"

	"fjacquet/budget-prep/cmd/dump"
	"fjacquet/budget-prep/cmd/prepare"
	"fjacquet/budget-prep/cmd/root"
	"fjacquet/budget-prep/cmd/transform"
	"fjacquet/budget-prep/internal/config"
)

func init() {
	// Load .env before viper reads BUDGET_* variables
	config.LoadEnv()

	root.Cmd.AddCommand(prepare.Cmd)
	root.Cmd.AddCommand(transform.Cmd)
	root.Cmd.AddCommand(dump.Cmd)
}

func main() {
	os.Exit(root.Execute(root.Cmd, os.Stdout, os.Stderr))
}
