package main

import (
	"os"

	"github.com/kraken-plugins/kraken-launcher/installer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
