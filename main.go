package main

import (
	"github.com/alycialee/latticegpm/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
