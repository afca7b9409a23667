package main

import (
	"os"

	"github.com/iwvelando/sem-planner/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
