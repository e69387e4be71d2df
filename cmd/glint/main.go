package main

import (
	"os"

	"github.com/dshills/glint/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
