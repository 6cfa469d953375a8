// Package main is the entry point for the rsk CLI client.
package main

import (
	"github.com/mkhandekar/restock-tracker/cmd/rsk/cmd"
)

func main() {
	cmd.Execute()
}
