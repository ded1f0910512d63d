package main

import (
	"github.com/creekorful/dictfixer/internal/dictfixer"
	"os"
)

func main() {
	app := dictfixer.GetApp()
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
