package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/loomworks/loom/pkg/types"
)

// applySchema creates the entity and label tables for every kind, in
// dependency order so foreign keys always reference existing tables.
func (s *Store) applySchema(ctx context.Context) error {
	for _, k := range types.Kinds {
		d, err := types.Lookup(k)
		if err != nil {
			return err
		}
		for _, stmt := range schemaFor(d) {
			if _, err := s.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%w: schema for %s: %v", types.ErrStorage, d.Table, err)
			}
		}
	}
	return nil
}

// schemaFor generates the DDL for one kind: the entity table with the meta
// block, the promoted columns with their declared cascade policy, and the
// label side table keyed by the owning row's uid.
func schemaFor(d *types.Descriptor) []string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", d.Table)
	b.WriteString("    uid TEXT PRIMARY KEY,\n")
	b.WriteString("    name TEXT NOT NULL,\n")
	b.WriteString("    version TEXT NOT NULL DEFAULT '',\n")
	if d.Kind == types.KindUser {
		b.WriteString("    owner_id TEXT,\n")
	} else {
		b.WriteString("    owner_id TEXT REFERENCES users (uid) ON DELETE SET NULL,\n")
	}
	b.WriteString("    description TEXT,\n")
	b.WriteString("    created TEXT NOT NULL,\n")
	b.WriteString("    updated TEXT NOT NULL,\n")
	b.WriteString("    spec TEXT NOT NULL DEFAULT '{}',\n")
	for _, c := range d.Columns {
		fmt.Fprintf(&b, "    %s %s", c.Name, columnType(c.Type))
		if c.NotNull {
			b.WriteString(" NOT NULL")
		}
		if c.Ref != nil {
			ref, err := types.Lookup(c.Ref.Kind)
			if err == nil {
				fmt.Fprintf(&b, " REFERENCES %s (uid) ON DELETE %s", ref.Table, c.Ref.OnDelete)
			}
		}
		b.WriteString(",\n")
	}
	if d.Versioned {
		b.WriteString("    UNIQUE (name, version)\n")
	} else {
		b.WriteString("    UNIQUE (name)\n")
	}
	b.WriteString(");")

	labels := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT NOT NULL,
    value TEXT NOT NULL,
    parent TEXT NOT NULL REFERENCES %s (uid) ON DELETE CASCADE,
    UNIQUE (name, parent)
);`, d.LabelTable, d.Table)

	index := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS idx_%s_name_value ON %s (name, value);",
		d.LabelTable, d.LabelTable)

	return []string{b.String(), labels, index}
}

// columnType maps a descriptor column type to storage DDL. Booleans are
// stored as 0/1 integers so both backends scan them identically.
func columnType(t types.ColumnType) string {
	if t == types.ColBool {
		return "INTEGER"
	}
	return "TEXT"
}
