package main

import "pytt/internal/cli"

func main() {
	cli.Execute()
}
