package main

import (
	"github.com/oceanbound/marlin/cmd/marlin/cmd"
)

func main() {
	cmd.Execute()
}
