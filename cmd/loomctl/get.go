package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	getUID     string
	getName    string
	getVersion string
)

var getCmd = &cobra.Command{
	Use:   "get <kind>",
	Short: "Get one entity by uid or name",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&getUID, "uid", "", "entity uid (accepts uid:version)")
	getCmd.Flags().StringVar(&getName, "name", "", "entity name")
	getCmd.Flags().StringVar(&getVersion, "version", "", "entity version")
}

func runGet(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	client, err := openClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	f := identFilters(getUID, getName, cmd.Flags().Changed("version"), getVersion)
	obj, err := client.Get(cmd.Context(), kind, f)
	if err != nil {
		return err
	}
	if obj == nil {
		return fmt.Errorf("%s not found", kind)
	}
	return printResult(obj)
}
