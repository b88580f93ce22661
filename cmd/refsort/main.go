package main

import (
	"os"

	"github.com/convox/refsort/pkg/cli"
)

var (
	version = "dev"
)

func main() {
	c := cli.New("refsort", version)

	os.Exit(c.Execute(os.Args[1:]))
}
