package main

import (
	"os"

	"github.com/elantcev/jsoncursor/cmd/jsonget/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
