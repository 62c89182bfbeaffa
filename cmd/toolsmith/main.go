package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zero-day-ai/toolsmith/cmd/toolsmith/commands"
)

func main() {
	if err := commands.NewCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
