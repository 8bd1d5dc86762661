// Package main is the entry point for the difind CLI.
package main

import "difind.dev/pkg/difind/cmd"

func main() {
	cmd.Execute()
}
