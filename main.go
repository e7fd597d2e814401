package main

import (
	"os"

	"github.com/netcourse/netcourse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
