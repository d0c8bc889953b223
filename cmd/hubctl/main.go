package main

import (
	"github.com/spiderxog/hub/internal/cli"
)

func main() {
	cli.Execute()
}
