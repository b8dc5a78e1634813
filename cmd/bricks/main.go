package main

import (
	"github.com/quantkit/bricks/pkg/cmd"
)

func main() {
	cmd.Execute()
}
