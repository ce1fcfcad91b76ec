package main

import (
	"github.com/sarchlab/vmsim/cmd"
)

func main() {
	cmd.Execute()
}
