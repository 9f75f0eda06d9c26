package main

import (
	"os"

	"github.com/abhisek/showrank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
