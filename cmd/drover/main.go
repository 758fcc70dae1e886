package main

import (
	"drover/internal/cli"
)

func main() {
	cli.Execute()
}
