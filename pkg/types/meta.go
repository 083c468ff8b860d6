package types

import (
	"fmt"
	"time"
)

// Object is implemented by every typed domain object the store handles.
type Object interface {
	// Kind returns the entity kind.
	Kind() Kind
	// Base returns the shared identity block.
	Base() *Meta
	// ToMap projects the object into a flat map: identity fields, promoted
	// top-level fields, and every spec key, with labels under "labels".
	ToMap() map[string]any
}

// Meta is the identity block shared by every entity record.
type Meta struct {
	UID         string            // Generated at creation, immutable.
	Name        string            // Human-chosen; unique per (name, version).
	Version     string            // Empty for unversioned kinds.
	OwnerID     string            // Optional reference to a User uid.
	Description string            // Optional free text.
	Created     time.Time         // Set by the store on create.
	Updated     time.Time         // Refreshed by the store on every write.
	Spec        map[string]any    // Fields not promoted to typed columns.
	Labels      map[string]string // Name/value tags, keyed by the row uid.
}

// Base returns the meta block itself, satisfying Object for embedders.
func (m *Meta) Base() *Meta { return m }

// metaKeys are the flat-map keys consumed by the identity block. They are
// excluded from the column/spec split on every kind.
var metaKeys = []string{
	"uid", "name", "version", "owner_id", "description",
	"created", "updated", "labels",
}

// flatMap projects the meta block over a copy of Spec. Identity keys win on
// collision with spec keys.
func (m *Meta) flatMap() map[string]any {
	out := make(map[string]any, len(m.Spec)+len(metaKeys))
	for k, v := range m.Spec {
		out[k] = v
	}
	out["uid"] = m.UID
	out["name"] = m.Name
	out["version"] = m.Version
	out["owner_id"] = m.OwnerID
	out["description"] = m.Description
	out["created"] = m.Created
	out["updated"] = m.Updated
	if m.Labels != nil {
		labels := make(map[string]string, len(m.Labels))
		for k, v := range m.Labels {
			labels[k] = v
		}
		out["labels"] = labels
	}
	return out
}

// decodeMeta pops the identity keys out of a copy of m and returns the meta
// block plus the remaining keys. The caller pops its promoted fields from
// rest and assigns what is left to Spec. Name is required.
func decodeMeta(m map[string]any) (Meta, map[string]any, error) {
	rest := make(map[string]any, len(m))
	for k, v := range m {
		rest[k] = v
	}

	var meta Meta
	var err error
	if meta.UID, err = takeString(rest, "uid"); err != nil {
		return Meta{}, nil, err
	}
	if meta.Name, err = takeString(rest, "name"); err != nil {
		return Meta{}, nil, err
	}
	if meta.Name == "" {
		return Meta{}, nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if meta.Version, err = takeString(rest, "version"); err != nil {
		return Meta{}, nil, err
	}
	if meta.OwnerID, err = takeString(rest, "owner_id"); err != nil {
		return Meta{}, nil, err
	}
	if meta.Description, err = takeString(rest, "description"); err != nil {
		return Meta{}, nil, err
	}
	if meta.Created, err = takeTime(rest, "created"); err != nil {
		return Meta{}, nil, err
	}
	if meta.Updated, err = takeTime(rest, "updated"); err != nil {
		return Meta{}, nil, err
	}
	if meta.Labels, err = takeLabels(rest); err != nil {
		return Meta{}, nil, err
	}
	return meta, rest, nil
}
