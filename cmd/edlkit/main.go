// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"edlkit/cmd/edlkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
