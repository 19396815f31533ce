package main

import (
	"os"

	"github.com/edvaldo-gutierres/api-pwb/pkg/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
