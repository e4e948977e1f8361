// Command unisearch is the entry point for the universal search CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/unisearch/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
