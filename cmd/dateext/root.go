package main

import (
	"log"

	"github.com/sobadon/dateext/cmd/dateext/op"
	"github.com/sobadon/dateext/cmd/dateext/version"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:           "dateext",
		Short:         "date/time helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(version.Command())
	rootCmd.AddCommand(op.Commands()...)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
