package main

import (
	"os"

	"github.com/naghz/naghz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
