package main

import (
	"os"

	"github.com/0xguv/overcue/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
