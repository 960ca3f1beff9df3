// Package main provides the adboard CLI.
package main

import "github.com/mesh-intelligence/adboard/internal/cli"

func main() {
	cli.Execute()
}
