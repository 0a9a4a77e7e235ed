package main

import "github.com/mmynk/secretsanta/internal/cli"

func main() {
	cli.Execute()
}
