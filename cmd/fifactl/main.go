package main

import "github.com/riskibarqy/fifa-results/internal/interfaces/cli"

func main() {
	cli.Execute()
}
