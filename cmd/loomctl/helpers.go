// Shared helpers for loomctl subcommands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/loomworks/loom/pkg/controller"
	"github.com/loomworks/loom/pkg/types"
)

// openClient loads the configuration and connects the store.
func openClient(ctx context.Context) (*controller.Client, error) {
	cfg, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}
	var log *zap.Logger
	if flagVerbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}
	return controller.Open(ctx, cfg, log)
}

// parseKind validates the kind argument.
func parseKind(arg string) (types.Kind, error) {
	k := types.Kind(arg)
	if _, err := types.Lookup(k); err != nil {
		return "", err
	}
	return k, nil
}

// parsePairs parses repeated key=value flags into a map. A bare "key="
// yields the empty string value.
func parsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", types.ErrValidation, p)
		}
		out[k] = v
	}
	return out, nil
}

// identFilters builds identity filters from the shared --uid/--name/--version
// flags. The --version flag distinguishes unset from the empty string.
func identFilters(uid, name string, versionSet bool, version string) types.Filters {
	f := types.Filters{UID: uid, Name: name}
	if versionSet {
		f.Version = &version
	}
	return f
}

// printResult writes one result to stdout, as JSON when --json is set.
func printResult(v any) error {
	if obj, ok := v.(types.Object); ok {
		v = obj.ToMap()
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	if s, ok := v.(string); ok {
		fmt.Println(s)
		return nil
	}
	fmt.Printf("%v\n", v)
	return nil
}
