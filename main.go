// Package main is the entry point for the goozejs CLI.
package main

import "gooze.dev/pkg/goozejs/cmd"

func main() {
	cmd.Execute()
}
