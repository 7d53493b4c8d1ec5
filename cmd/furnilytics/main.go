package main

import (
	"os"

	"github.com/furnilytics/furnilytics-go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// cobra already printed the error to stderr.
		os.Exit(1)
	}
}
