package main

import (
	"fmt"
	"os"

	"todo-list/internal/cli"
	"todo-list/internal/config"
)

func main() {
	root := cli.NewRootCommand(config.NewLoader())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCodeOf(err))
	}
}
