package main

import (
	"github.com/spf13/cobra"

	"github.com/loomworks/loom/pkg/types"
)

var (
	listOwner  string
	listMode   string
	listLabels []string
	listFields []string
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List entities of a kind",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listOwner, "owner", "", "filter by owning user uid")
	listCmd.Flags().StringVar(&listMode, "mode", "short", "output mode: names, short, details, dict")
	listCmd.Flags().StringArrayVar(&listLabels, "label", nil, "label filter as name=value (repeatable)")
	listCmd.Flags().StringArrayVar(&listFields, "field", nil, "top-level field filter as key=value (repeatable)")
}

func runList(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	mode, err := types.ParseOutputMode(listMode)
	if err != nil {
		return err
	}
	labels, err := parsePairs(listLabels)
	if err != nil {
		return err
	}
	fields, err := parsePairs(listFields)
	if err != nil {
		return err
	}

	lf := types.ListFilters{OwnerID: listOwner, Labels: labels}
	if len(fields) > 0 {
		lf.Fields = make(map[string]any, len(fields))
		for k, v := range fields {
			lf.Fields[k] = v
		}
	}

	client, err := openClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	results, err := client.List(cmd.Context(), kind, lf, mode)
	if err != nil {
		return err
	}
	for _, r := range results {
		if err := printResult(r); err != nil {
			return err
		}
	}
	return nil
}
