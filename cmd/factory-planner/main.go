package main

import "github.com/andrescamacho/factoryplanner-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
