package types

import "errors"

// Error kinds surfaced by the store. A lookup that matches nothing is not an
// error: Get, Update, and the resolver return nil instead, and callers must
// check. All write-path errors imply the enclosing transaction was rolled
// back before the error surfaced.
var (
	// ErrDuplicate reports a uniqueness violation on create: an existing
	// row with the same name and version, or a duplicate label.
	ErrDuplicate = errors.New("duplicate entity")

	// ErrConflict reports a version supplied both embedded in the uid
	// ("uid:version") and as a separate parameter.
	ErrConflict = errors.New("conflicting version specification")

	// ErrValidation reports stored or supplied data that cannot be
	// reconstructed into the typed object.
	ErrValidation = errors.New("invalid entity data")

	// ErrStorage wraps any other backing-store failure.
	ErrStorage = errors.New("storage failure")
)
