package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/dendra-hashsum/internal/cmd"
	"github.com/dendrascience/dendra-hashsum/version"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.NewRootCmd(),
		fang.WithVersion(version.Get().Full()),
	); err != nil {
		os.Exit(1)
	}
}
