package main

import "github.com/pfrederiksen/pokedata/internal/cli"

func main() {
	cli.Execute()
}
