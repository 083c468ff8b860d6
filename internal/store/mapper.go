package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/loomworks/loom/pkg/types"
)

// record is the column-level form of one entity: the meta block, the
// promoted column values by name, the serialized spec, and the labels popped
// out for the side table.
type record struct {
	uid         string
	name        string
	version     string
	ownerID     any // string or nil
	description any
	created     string
	updated     string
	spec        []byte
	cols        map[string]any
	labels      map[string]string
}

// toRecord splits a typed object into its record: identity and promoted
// fields become typed columns, labels are popped for the side table, and
// every remaining field lands in the spec JSON. Created/updated are written
// from the meta block, which the engine stamps before calling.
func toRecord(d *types.Descriptor, obj types.Object) (*record, error) {
	meta := obj.Base()
	flat := obj.ToMap()
	for _, k := range []string{
		"uid", "name", "version", "owner_id", "description",
		"created", "updated", "labels",
	} {
		delete(flat, k)
	}

	rec := &record{
		uid:         meta.UID,
		name:        meta.Name,
		version:     meta.Version,
		ownerID:     nullableText(meta.OwnerID),
		description: nullableText(meta.Description),
		created:     meta.Created.UTC().Format(timeLayout),
		updated:     meta.Updated.UTC().Format(timeLayout),
		cols:        make(map[string]any, len(d.Columns)),
		labels:      meta.Labels,
	}

	for _, c := range d.Columns {
		v := flat[c.Name]
		delete(flat, c.Name)
		cv, err := columnValue(c, v)
		if err != nil {
			return nil, err
		}
		rec.cols[c.Name] = cv
	}

	spec, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("%w: encode spec: %v", types.ErrValidation, err)
	}
	rec.spec = spec
	return rec, nil
}

// columnValue converts a flat-map value into its storage form. Empty text is
// stored as NULL so nullable foreign keys stay unset; booleans are stored as
// 0/1 integers.
func columnValue(c types.Column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch c.Type {
	case types.ColBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: column %q must be a boolean", types.ErrValidation, c.Name)
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil
	default:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: column %q must be a string", types.ErrValidation, c.Name)
		}
		return nullableText(s), nil
	}
}

// nullableText maps the empty string to NULL.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// selectColumns returns the full SELECT column list for a kind: the meta
// block first, then the promoted columns in declaration order.
func selectColumns(d *types.Descriptor) []string {
	cols := []string{"uid", "name", "version", "owner_id", "description",
		"created", "updated", "spec"}
	for _, c := range d.Columns {
		cols = append(cols, c.Name)
	}
	return cols
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanFlat reads one row into the flat map form: spec keys first, then the
// typed columns overlaid so they win on key collision. Labels are attached
// by the caller.
func scanFlat(d *types.Descriptor, row scanner) (map[string]any, error) {
	var uid, name, version, created, updated string
	var ownerID, description sql.NullString
	var spec []byte

	dests := []any{&uid, &name, &version, &ownerID, &description,
		&created, &updated, &spec}
	colDests := make([]any, len(d.Columns))
	for i, c := range d.Columns {
		if c.Type == types.ColBool {
			colDests[i] = new(sql.NullInt64)
		} else {
			colDests[i] = new(sql.NullString)
		}
		dests = append(dests, colDests[i])
	}

	if err := row.Scan(dests...); err != nil {
		return nil, err
	}

	flat := make(map[string]any)
	if len(spec) > 0 {
		if err := json.Unmarshal(spec, &flat); err != nil {
			return nil, fmt.Errorf("%w: decode spec for %s %q: %v",
				types.ErrValidation, d.Kind, uid, err)
		}
	}

	flat["uid"] = uid
	flat["name"] = name
	flat["version"] = version
	flat["owner_id"] = ownerID.String
	flat["description"] = description.String

	createdAt, err := time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("%w: parse created for %s %q: %v",
			types.ErrValidation, d.Kind, uid, err)
	}
	updatedAt, err := time.Parse(timeLayout, updated)
	if err != nil {
		return nil, fmt.Errorf("%w: parse updated for %s %q: %v",
			types.ErrValidation, d.Kind, uid, err)
	}
	flat["created"] = createdAt
	flat["updated"] = updatedAt

	for i, c := range d.Columns {
		switch dv := colDests[i].(type) {
		case *sql.NullString:
			flat[c.Name] = dv.String
		case *sql.NullInt64:
			flat[c.Name] = dv.Valid && dv.Int64 != 0
		}
	}
	return flat, nil
}

// patch is an update request split by destination: typed column assignments,
// spec key assignments, and the label patch (nil values delete labels).
type patch struct {
	cols   map[string]any
	spec   map[string]any
	labels map[string]any
}

// splitPatch routes each updated field: identity and promoted keys overwrite
// typed columns, "labels" is handled by the label store, everything else
// lands in the spec map. Nil values mean "leave untouched" and are dropped,
// except inside labels where nil is the delete signal. The uid and the
// server-owned timestamps are never patchable.
func splitPatch(d *types.Descriptor, fields map[string]any) (*patch, error) {
	p := &patch{cols: make(map[string]any), spec: make(map[string]any)}
	for k, v := range fields {
		switch {
		case k == "labels":
			lp, err := labelPatch(v)
			if err != nil {
				return nil, err
			}
			p.labels = lp
		case k == "uid" || k == "created" || k == "updated":
			// Server-owned; ignored.
		case v == nil:
			// Leave spec untouched.
		case k == "name" || k == "version":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field %q must be a string", types.ErrValidation, k)
			}
			p.cols[k] = s
		case k == "owner_id" || k == "description":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field %q must be a string", types.ErrValidation, k)
			}
			p.cols[k] = nullableText(s)
		case d.HasColumn(k):
			for _, c := range d.Columns {
				if c.Name != k {
					continue
				}
				cv, err := columnValue(c, v)
				if err != nil {
					return nil, err
				}
				p.cols[k] = cv
			}
		default:
			p.spec[k] = v
		}
	}
	return p, nil
}

// labelPatch normalizes the "labels" value of an update into a map where a
// nil entry means "delete this label".
func labelPatch(v any) (map[string]any, error) {
	switch lv := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return lv, nil
	case map[string]string:
		out := make(map[string]any, len(lv))
		for k, s := range lv {
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: labels must be a name/value map", types.ErrValidation)
	}
}
