/*
Package main provides the entry point of the mailpreview tool.
*/
package main

import (
	"os"

	"zk-contact-backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
