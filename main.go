package main

import (
	"os"

	"github.com/buildvault/plansearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
