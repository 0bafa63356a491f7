package main

import (
	"os"

	"github.com/arthur-debert/ansiout/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
