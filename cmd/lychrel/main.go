package main

import "github.com/katalvlaran/lychrel/internal/cli"

func main() {
	cli.Execute()
}
