package main

import "osa-filters/internal/cli"

func main() {
	cli.Execute()
}
