package main

import (
	"github.com/henderiw/idrange/cmd/idrange/cmd"
)

func main() {
	cmd.Execute()
}
