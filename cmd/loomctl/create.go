package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomworks/loom/pkg/types"
)

var (
	createVersion     string
	createOwner       string
	createDescription string
	createLabels      []string
	createFields      []string
	createSpecJSON    string
)

var createCmd = &cobra.Command{
	Use:   "create <kind> <name>",
	Short: "Create an entity",
	Args:  cobra.ExactArgs(2),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createVersion, "version", "", "entity version")
	createCmd.Flags().StringVar(&createOwner, "owner", "", "owning user uid")
	createCmd.Flags().StringVar(&createDescription, "description", "", "free-text description")
	createCmd.Flags().StringArrayVar(&createLabels, "label", nil, "label as name=value (repeatable)")
	createCmd.Flags().StringArrayVar(&createFields, "field", nil, "field as key=value (repeatable)")
	createCmd.Flags().StringVar(&createSpecJSON, "spec", "", "additional fields as a JSON object")
}

func runCreate(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	d, err := types.Lookup(kind)
	if err != nil {
		return err
	}

	flat := map[string]any{
		"name":        args[1],
		"version":     createVersion,
		"owner_id":    createOwner,
		"description": createDescription,
	}
	if createSpecJSON != "" {
		if err := json.Unmarshal([]byte(createSpecJSON), &flat); err != nil {
			return fmt.Errorf("%w: --spec: %v", types.ErrValidation, err)
		}
		flat["name"] = args[1]
	}
	fields, err := parsePairs(createFields)
	if err != nil {
		return err
	}
	for k, v := range fields {
		flat[k] = v
	}
	labels, err := parsePairs(createLabels)
	if err != nil {
		return err
	}
	if len(labels) > 0 {
		flat["labels"] = labels
	}

	obj, err := d.New(flat)
	if err != nil {
		return err
	}

	client, err := openClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	created, err := client.Create(cmd.Context(), obj)
	if err != nil {
		return err
	}
	return printResult(created)
}
