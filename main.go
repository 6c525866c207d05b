package main

import (
	"os"

	"github.com/rogersnm/resumecraft/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
