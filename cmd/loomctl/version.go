package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the loomctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loomctl %s\n", Version)
	},
}
