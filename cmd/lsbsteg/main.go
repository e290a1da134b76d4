package main

import (
	"log"

	"github.com/yyyoichi/lsbsteg/cmd/lsbsteg/cmd"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lsbsteg: ")
	cmd.Version = Version
	cmd.Execute()
}
