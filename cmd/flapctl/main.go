package main

import "github.com/floopybird/backend/internal/cli"

func main() {
	cli.Execute()
}
