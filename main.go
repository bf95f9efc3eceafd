package main

import (
	"os"

	"github.com/claudebuildsapps/matrixmux/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
