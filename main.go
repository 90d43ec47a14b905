package main

import (
	"os"

	"github.com/jsinelofficial/metamask-dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
