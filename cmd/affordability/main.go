package main

import "github.com/segyhp/affordability-engine/internal/cli"

func main() {
	cli.Execute()
}
