package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteUID     string
	deleteName    string
	deleteVersion string
)

var deleteCmd = &cobra.Command{
	Use:   "delete <kind>",
	Short: "Delete entities matching the given identity",
	Long:  "Delete every entity matching the identity filters. Deleting zero entities succeeds; child rows follow each edge's declared cascade policy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteUID, "uid", "", "entity uid (accepts uid:version)")
	deleteCmd.Flags().StringVar(&deleteName, "name", "", "entity name")
	deleteCmd.Flags().StringVar(&deleteVersion, "version", "", "entity version")
}

func runDelete(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	client, err := openClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	f := identFilters(deleteUID, deleteName, cmd.Flags().Changed("version"), deleteVersion)
	if err := client.Delete(cmd.Context(), kind, f); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}
