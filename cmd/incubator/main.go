// Command incubator scaffolds front-end projects.
package main

import (
	"os"

	"github.com/frontend-incubator/incubator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
