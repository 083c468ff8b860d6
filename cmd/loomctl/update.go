package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomworks/loom/pkg/types"
)

var (
	updateUID       string
	updateName      string
	updateVersion   string
	updateFields    []string
	updateLabels    []string
	updateRmLabels  []string
	updatePatchJSON string
)

var updateCmd = &cobra.Command{
	Use:   "update <kind>",
	Short: "Merge fields into an existing entity",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateUID, "uid", "", "entity uid (accepts uid:version)")
	updateCmd.Flags().StringVar(&updateName, "name", "", "entity name")
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "entity version")
	updateCmd.Flags().StringArrayVar(&updateFields, "set", nil, "field as key=value (repeatable)")
	updateCmd.Flags().StringArrayVar(&updateLabels, "label", nil, "label upsert as name=value (repeatable)")
	updateCmd.Flags().StringArrayVar(&updateRmLabels, "remove-label", nil, "label name to remove (repeatable)")
	updateCmd.Flags().StringVar(&updatePatchJSON, "patch", "", "fields as a JSON object")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	patch := map[string]any{}
	if updatePatchJSON != "" {
		if err := json.Unmarshal([]byte(updatePatchJSON), &patch); err != nil {
			return fmt.Errorf("%w: --patch: %v", types.ErrValidation, err)
		}
	}
	fields, err := parsePairs(updateFields)
	if err != nil {
		return err
	}
	for k, v := range fields {
		patch[k] = v
	}

	labelSet, err := parsePairs(updateLabels)
	if err != nil {
		return err
	}
	if len(labelSet) > 0 || len(updateRmLabels) > 0 {
		labels := map[string]any{}
		if existing, ok := patch["labels"].(map[string]any); ok {
			labels = existing
		}
		for k, v := range labelSet {
			labels[k] = v
		}
		for _, k := range updateRmLabels {
			labels[k] = nil
		}
		patch["labels"] = labels
	}

	client, err := openClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	f := identFilters(updateUID, updateName, cmd.Flags().Changed("version"), updateVersion)
	obj, err := client.Update(cmd.Context(), kind, f, patch)
	if err != nil {
		return err
	}
	if obj == nil {
		return fmt.Errorf("%s not found", kind)
	}
	return printResult(obj)
}
