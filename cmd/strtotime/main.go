// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gitlab.com/fisherprime/strtotime/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
