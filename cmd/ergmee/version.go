package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Args:  cobra.NoArgs,
	Short: "Print the ergmee version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}
