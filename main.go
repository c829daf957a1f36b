package main

import (
	"github.com/tokentools/tokendiff/cmd"
)

func main() {
	cmd.Execute()
}
