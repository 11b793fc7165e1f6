package main

import (
	"github.com/go-imsto/picbatch/cmd"
)

func main() {
	cmd.Main()
}
