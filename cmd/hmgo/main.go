package main

import (
	"github.com/devicelab-dev/hmgo/pkg/cli"
)

func main() {
	cli.Execute()
}
