package main

import (
	"github.com/notargets/gocfd-swe/cmd"
)

func main() {
	cmd.Execute()
}
