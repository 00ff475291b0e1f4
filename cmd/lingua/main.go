package main

import "lingua/internal/cli"

func main() {
	cli.Execute()
}
