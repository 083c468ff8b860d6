package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/loomworks/loom/pkg/types"
)

// insertLabels writes the label rows for a freshly created entity. Runs in
// the same transaction as the entity insert; a duplicate (name, parent)
// surfaces as a uniqueness violation and rolls the create back.
func (s *Store) insertLabels(ctx context.Context, q queryer, d *types.Descriptor, uid string, labels map[string]string) error {
	if len(labels) == 0 {
		return nil
	}
	stmt := s.rebind(fmt.Sprintf(
		"INSERT INTO %s (name, value, parent) VALUES (?, ?, ?)", d.LabelTable))
	for _, name := range sortedKeys(labels) {
		if _, err := q.ExecContext(ctx, stmt, name, labels[name], uid); err != nil {
			return err
		}
	}
	return nil
}

// applyLabelPatch upserts the given labels onto one entity: existing names
// are updated in place, new names appended, nil-valued names removed. Names
// not mentioned in the patch are left untouched.
func (s *Store) applyLabelPatch(ctx context.Context, q queryer, d *types.Descriptor, uid string, lp map[string]any) error {
	if len(lp) == 0 {
		return nil
	}
	upsert := s.rebind(fmt.Sprintf(
		`INSERT INTO %s (name, value, parent) VALUES (?, ?, ?)
		 ON CONFLICT (name, parent) DO UPDATE SET value = excluded.value`,
		d.LabelTable))
	remove := s.rebind(fmt.Sprintf(
		"DELETE FROM %s WHERE name = ? AND parent = ?", d.LabelTable))

	names := make([]string, 0, len(lp))
	for name := range lp {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := lp[name]
		if v == nil {
			if _, err := q.ExecContext(ctx, remove, name, uid); err != nil {
				return err
			}
			continue
		}
		value, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: label %q must be a string", types.ErrValidation, name)
		}
		if _, err := q.ExecContext(ctx, upsert, name, value, uid); err != nil {
			return err
		}
	}
	return nil
}

// loadLabels fetches the label sets for the given uids in one query,
// returning a parent→(name→value) map. Used by Get and List so label reads
// never cost one query per row.
func (s *Store) loadLabels(ctx context.Context, q queryer, d *types.Descriptor, uids []string) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(uids))
	if len(uids) == 0 {
		return out, nil
	}

	placeholders := make([]string, len(uids))
	args := make([]any, len(uids))
	for i, uid := range uids {
		placeholders[i] = "?"
		args[i] = uid
	}
	stmt := s.rebind(fmt.Sprintf(
		"SELECT parent, name, value FROM %s WHERE parent IN (%s)",
		d.LabelTable, strings.Join(placeholders, ", ")))

	rows, err := q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parent, name, value string
		if err := rows.Scan(&parent, &name, &value); err != nil {
			return nil, err
		}
		if out[parent] == nil {
			out[parent] = make(map[string]string)
		}
		out[parent][name] = value
	}
	return out, rows.Err()
}

// sortedKeys returns the keys of m in sorted order for deterministic writes.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
