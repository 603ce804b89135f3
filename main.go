// Package main is the entry point for the lsg CLI.
package main

import "lsg.dev/pkg/lsg/cmd"

func main() {
	cmd.Execute()
}
