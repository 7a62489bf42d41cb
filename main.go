package main

import (
	"os"

	"github.com/vegasq/flatsql/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
