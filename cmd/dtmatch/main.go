package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/dtmatch/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
