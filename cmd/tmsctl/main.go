package main

import (
	"os"

	"tms/cmd/tmsctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
