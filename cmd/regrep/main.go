package main

import (
	"os"

	"github.com/regrep/regrep/cmd"
)

// Usage: echo <input_text> | regrep -E <pattern>
func main() {
	os.Exit(cmd.Execute())
}
