package main

import "github.com/lintcat/lintcat/internal/cli"

func main() {
	cli.Execute()
}
