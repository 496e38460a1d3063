package main

import (
	"fmt"
	"os"

	"github.com/bethropolis/tidal/internal/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tidal: %v\n", err)
		os.Exit(1)
	}
}
