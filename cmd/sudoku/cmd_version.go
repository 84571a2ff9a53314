package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// overridden at build time with -ldflags "-X main.version=..."
var version = "unknown"

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sudoku version", version)
		fmt.Println("environment:", runtime.Version(), runtime.GOOS+"/"+runtime.GOARCH)
	},
}

func init() {
	mainCommand.AddCommand(commandVersion)
}
