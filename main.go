package main

import (
	"github.com/Alturino/salon/cmd"
)

func main() {
	cmd.Start()
}
