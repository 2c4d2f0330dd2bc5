package main

import (
	"github.com/scratchlog/scratchlog"
	"github.com/scratchlog/scratchlog/internal/interfaces/cli"
)

func main() {
	container := &cli.CLIContainer{
		Logger: scratchlog.Default(),
	}

	cli.Execute(container)
}
