package main

import (
	"os"

	"github.com/budjb/things-we-make/cmd/thingswemake/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
