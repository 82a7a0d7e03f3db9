package main

import (
	"os"

	"github.com/jpedro/master/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
