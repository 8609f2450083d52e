package main

import (
	"os"

	"github.com/oseayemenre/alexandria/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
