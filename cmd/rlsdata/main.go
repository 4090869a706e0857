package main

import (
	"context"
	"os"

	"github.com/viant/rlsdata/internal/cli"
)

func main() {
	runner := cli.NewRunner(os.Stdout, os.Stderr)
	os.Exit(runner.Run(context.Background(), os.Args[1:]))
}
