package main

import (
	"os"

	"github.com/spf13/cobra"

	servecmder "github.com/papercomputeco/easel/cmd/easel/serve"
)

func main() {
	root := &cobra.Command{
		Use:   "easel",
		Short: "easel turns chat transcripts into chart data via an LLM",
	}

	root.AddCommand(servecmder.NewServeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
