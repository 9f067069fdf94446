package main

import (
	"os"

	"github.com/penwyp/go-portfolio-grid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
