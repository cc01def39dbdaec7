package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/CrimsonDemon567/lumo/cmd/lumoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Fprintf(os.Stderr, "lumoc: %v\n", err)
		}
		os.Exit(1)
	}
}
