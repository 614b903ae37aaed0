package main

import (
	"github.com/robotalks/adio.go/pkg/adio/env"
	"github.com/robotalks/adio.go/pkg/cli/sh"

	_ "github.com/robotalks/adio.go/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
