package main

import (
	"os"

	"github.com/jacoelho/laxjson/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := cli.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	return cli.Run(cfg)
}
