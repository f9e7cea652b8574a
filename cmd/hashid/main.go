package main

import (
	"github.com/spf13/cobra"

	"github.com/danilovkiri/dk_go_hashids/internal/cli"
)

func main() {
	cobra.CheckErr(cli.NewRootCommand().Execute())
}
