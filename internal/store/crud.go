package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/loomworks/loom/pkg/types"
)

// q returns the queryer to read through: the caller's transaction when one
// was supplied, the pool otherwise.
func (s *Store) q(tx *sql.Tx) queryer {
	if tx != nil {
		return tx
	}
	return s.db
}

// Create assigns a uid and timestamps, splits the object into its record,
// and inserts the row and its labels in one transaction. A duplicate
// (name, version) or duplicate label rolls everything back and returns
// ErrDuplicate; the row is visible to readers only after commit.
func (s *Store) Create(ctx context.Context, tx *sql.Tx, obj types.Object) (types.Object, error) {
	d, err := types.Lookup(obj.Kind())
	if err != nil {
		return nil, err
	}
	meta := obj.Base()
	if meta.Name == "" {
		return nil, fmt.Errorf("%w: name is required", types.ErrValidation)
	}
	if !d.Versioned && meta.Version != "" {
		return nil, fmt.Errorf("%w: %s is not versioned", types.ErrValidation, d.Kind)
	}

	now := time.Now().UTC()
	meta.UID = newUID()
	meta.Created = now
	meta.Updated = now

	rec, err := toRecord(d, obj)
	if err != nil {
		return nil, err
	}

	run, owned, err := s.begin(ctx, tx)
	if err != nil {
		return nil, err
	}
	err = func() error {
		cols := []string{"uid", "name", "version", "owner_id", "description",
			"created", "updated", "spec"}
		args := []any{rec.uid, rec.name, rec.version, rec.ownerID,
			rec.description, rec.created, rec.updated, rec.spec}
		for _, c := range d.Columns {
			cols = append(cols, c.Name)
			args = append(args, rec.cols[c.Name])
		}
		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			d.Table, strings.Join(cols, ", "),
			strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
		if _, err := run.ExecContext(ctx, s.rebind(stmt), args...); err != nil {
			return err
		}
		return s.insertLabels(ctx, run, d, rec.uid, rec.labels)
	}()
	if err = s.finish(run, owned, err); err != nil {
		s.log.Debugw("create rolled back", "kind", d.Kind, "name", meta.Name)
		return nil, classify("create "+string(d.Kind), err)
	}
	return obj, nil
}

// Get resolves a partial identity to one row, eager-loads its labels, and
// maps it back into the typed object. Returns nil, nil when nothing matches;
// callers distinguish not-found from error.
func (s *Store) Get(ctx context.Context, tx *sql.Tx, kind types.Kind, f types.Filters) (types.Object, error) {
	d, err := types.Lookup(kind)
	if err != nil {
		return nil, err
	}
	q := s.q(tx)
	flat, err := s.resolve(ctx, q, d, f)
	if err != nil {
		return nil, classify("get "+string(kind), err)
	}
	if flat == nil {
		return nil, nil
	}
	uid := flat["uid"].(string)
	labels, err := s.loadLabels(ctx, q, d, []string{uid})
	if err != nil {
		return nil, classify("get "+string(kind), err)
	}
	if set := labels[uid]; len(set) > 0 {
		flat["labels"] = set
	}
	return d.New(flat)
}

// Update resolves the row the filters refer to and merges the given fields
// into it: identity and promoted keys overwrite their typed columns, other
// keys upsert into spec (nil values leave spec untouched), and the label
// patch is applied with nil meaning delete. Returns nil, nil when no row
// matches; update never creates. Last write wins at the commit boundary.
func (s *Store) Update(ctx context.Context, tx *sql.Tx, kind types.Kind, f types.Filters, fields map[string]any) (types.Object, error) {
	d, err := types.Lookup(kind)
	if err != nil {
		return nil, err
	}
	p, err := splitPatch(d, fields)
	if err != nil {
		return nil, err
	}

	run, owned, err := s.begin(ctx, tx)
	if err != nil {
		return nil, err
	}

	var out types.Object
	err = func() error {
		flat, err := s.resolve(ctx, run, d, f)
		if err != nil || flat == nil {
			return err
		}
		uid := flat["uid"].(string)

		// Rebuild the stored spec from the merged map, then layer the
		// patch's spec assignments on top.
		spec := make(map[string]any, len(flat))
		for k, v := range flat {
			spec[k] = v
		}
		for _, k := range []string{"uid", "name", "version", "owner_id",
			"description", "created", "updated", "labels"} {
			delete(spec, k)
		}
		for _, c := range d.Columns {
			delete(spec, c.Name)
		}
		for k, v := range p.spec {
			spec[k] = v
		}
		specJSON, err := json.Marshal(spec)
		if err != nil {
			return fmt.Errorf("%w: encode spec: %v", types.ErrValidation, err)
		}

		sets := []string{"updated = ?", "spec = ?"}
		args := []any{time.Now().UTC().Format(timeLayout), specJSON}
		colNames := make([]string, 0, len(p.cols))
		for k := range p.cols {
			colNames = append(colNames, k)
		}
		sort.Strings(colNames)
		for _, k := range colNames {
			sets = append(sets, k+" = ?")
			args = append(args, p.cols[k])
		}
		args = append(args, uid)

		stmt := fmt.Sprintf("UPDATE %s SET %s WHERE uid = ?",
			d.Table, strings.Join(sets, ", "))
		if _, err := run.ExecContext(ctx, s.rebind(stmt), args...); err != nil {
			return err
		}
		if err := s.applyLabelPatch(ctx, run, d, uid, p.labels); err != nil {
			return err
		}

		merged, err := s.resolve(ctx, run, d, types.Filters{UID: uid})
		if err != nil {
			return err
		}
		labels, err := s.loadLabels(ctx, run, d, []string{uid})
		if err != nil {
			return err
		}
		if set := labels[uid]; len(set) > 0 {
			merged["labels"] = set
		}
		out, err = d.New(merged)
		return err
	}()
	if err = s.finish(run, owned, err); err != nil {
		return nil, classify("update "+string(kind), err)
	}
	return out, nil
}

// Delete removes every row matching the filters and commits. Deleting zero
// rows is not an error. Child rows follow the cascade policy declared on
// their foreign keys; the engine adds no cascade logic of its own.
func (s *Store) Delete(ctx context.Context, tx *sql.Tx, kind types.Kind, f types.Filters) error {
	d, err := types.Lookup(kind)
	if err != nil {
		return err
	}
	f, err = normalizeFilters(f)
	if err != nil {
		return err
	}

	run, owned, err := s.begin(ctx, tx)
	if err != nil {
		return err
	}
	err = func() error {
		conds, args := identClause(f)
		stmt := "DELETE FROM " + d.Table
		if len(conds) > 0 {
			stmt += " WHERE " + strings.Join(conds, " AND ")
		}
		res, err := run.ExecContext(ctx, s.rebind(stmt), args...)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil {
			s.log.Debugw("delete", "kind", d.Kind, "rows", n)
		}
		return nil
	}()
	if err = s.finish(run, owned, err); err != nil {
		return classify("delete "+string(kind), err)
	}
	return nil
}

// List returns every row matching the filters as a conjunction, with labels
// eager-loaded in a single side query, shaped by the requested output mode.
func (s *Store) List(ctx context.Context, tx *sql.Tx, kind types.Kind, lf types.ListFilters, mode types.OutputMode) ([]any, error) {
	d, err := types.Lookup(kind)
	if err != nil {
		return nil, err
	}
	lf.Filters, err = normalizeFilters(lf.Filters)
	if err != nil {
		return nil, err
	}

	conds, args := identClause(lf.Filters)
	if lf.OwnerID != "" {
		conds = append(conds, "owner_id = ?")
		args = append(args, lf.OwnerID)
	}

	fieldNames := make([]string, 0, len(lf.Fields))
	for k := range lf.Fields {
		fieldNames = append(fieldNames, k)
	}
	sort.Strings(fieldNames)
	for _, k := range fieldNames {
		var col *types.Column
		for i := range d.Columns {
			if d.Columns[i].Name == k {
				col = &d.Columns[i]
				break
			}
		}
		if col == nil {
			return nil, fmt.Errorf("%w: %q is not a top-level field of %s",
				types.ErrValidation, k, kind)
		}
		cv, err := columnValue(*col, lf.Fields[k])
		if err != nil {
			return nil, err
		}
		conds = append(conds, k+" = ?")
		args = append(args, cv)
	}

	for _, name := range sortedKeys(lf.Labels) {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s WHERE %s.parent = %s.uid AND %s.name = ? AND %s.value = ?)",
			d.LabelTable, d.LabelTable, d.Table, d.LabelTable, d.LabelTable))
		args = append(args, name, lf.Labels[name])
	}

	query := "SELECT " + strings.Join(selectColumns(d), ", ") + " FROM " + d.Table
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created DESC, uid DESC"

	q := s.q(tx)
	rows, err := q.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, classify("list "+string(kind), err)
	}
	defer rows.Close()

	var flats []map[string]any
	var uids []string
	for rows.Next() {
		flat, err := scanFlat(d, rows)
		if err != nil {
			return nil, classify("list "+string(kind), err)
		}
		flats = append(flats, flat)
		uids = append(uids, flat["uid"].(string))
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list "+string(kind), err)
	}

	labels, err := s.loadLabels(ctx, q, d, uids)
	if err != nil {
		return nil, classify("list "+string(kind), err)
	}

	objs := make([]types.Object, 0, len(flats))
	for i, flat := range flats {
		if set := labels[uids[i]]; len(set) > 0 {
			flat["labels"] = set
		}
		obj, err := d.New(flat)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}

	s.log.Debugw("list", "kind", d.Kind, "rows", len(objs), "mode", mode)
	return projectObjects(d, objs, mode)
}
