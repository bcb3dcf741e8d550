package main

import (
	"fmt"
	"os"

	"github.com/twitnic/lean/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "leandump: %v\n", err)
		os.Exit(1)
	}
}
