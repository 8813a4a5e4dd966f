package main

import "envscope/internal/cli"

func main() {
	cli.Execute()
}
