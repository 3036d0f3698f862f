package main

import (
	"fmt"
	"os"

	"github.com/trickstertwo/ereport/internal/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ereport:", err)
		os.Exit(1)
	}
}
