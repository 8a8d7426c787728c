// Package main holds the entry logic for the augur CLI.
package main

import (
	"fmt"
	"os"

	"github.com/augur-cli/augur/cmd"
	"github.com/augur-cli/augur/internal/histstore"
)

func main() {
	err := cmd.Execute()
	histstore.CloseStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
