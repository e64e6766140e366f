package main

import "maraos/internal/cli"

func main() {
	cli.Execute()
}
