package main

import "github.com/peircelogic/arggen/internal/cli"

func main() {
	cli.Execute()
}
