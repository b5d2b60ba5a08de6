package main

import (
	"os"

	"github.com/hmartiniano/variant-catalog/catalogctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
