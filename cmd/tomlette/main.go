package main

import (
	"os"

	"github.com/eidsvoll/tomlette/cmd/tomlette/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
