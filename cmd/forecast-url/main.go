package main

import (
	"fmt"
	"os"

	"openmeteo-url/internal/query"
)

func main() {
	rootCmd := newRootCmd(&cli{
		out:        os.Stdout,
		errOut:     os.Stderr,
		newService: query.NewQueryService,
	})

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
