package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize loom configuration and storage",
	Long:  "Create the configuration directory with a default config.yaml, then open the backend once to apply the schema.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := writeDefaultConfig(resolveConfigDir()); err != nil {
		return err
	}
	client, err := openClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()
	fmt.Println("initialized")
	return nil
}
