package main

import (
	"github.com/isaacphi/promptstash/internal/ui/cli"
)

func main() {
	cli.Execute()
}
