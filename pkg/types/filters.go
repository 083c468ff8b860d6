package types

// Filters is the partial identity a caller supplies to address one stored
// entity: a uid and/or a name, optionally narrowed to a version. Version may
// instead be embedded in the uid using the "uid:version" convention; the
// store splits it out and rejects a version given both ways with ErrConflict.
type Filters struct {
	UID     string
	Name    string
	Version *string
}

// ListFilters narrows a list call. All populated fields are combined as a
// conjunction.
type ListFilters struct {
	Filters

	// OwnerID filters on the owning user's uid.
	OwnerID string

	// Fields filters on promoted top-level columns by equality. Keys that
	// are not promoted columns of the listed kind are a validation error.
	Fields map[string]any

	// Labels requires every given name/value pair to be present on the
	// entity's label set.
	Labels map[string]string
}
