// Command idioms runs the funcidioms building blocks from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/Pure-Company/funcidioms/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
