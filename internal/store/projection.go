package store

import (
	"fmt"
	"time"

	"github.com/loomworks/loom/pkg/types"
)

// projectObjects shapes fully materialized objects into the requested output
// mode. Names-only results still pay the full read and map cost, which is
// acceptable at the data volumes this layer serves.
func projectObjects(d *types.Descriptor, objs []types.Object, mode types.OutputMode) ([]any, error) {
	out := make([]any, 0, len(objs))
	switch mode {
	case types.ModeNames:
		for _, o := range objs {
			out = append(out, o.Base().Name)
		}
	case types.ModeShort:
		for _, o := range objs {
			out = append(out, shortMap(d, o))
		}
	case types.ModeDetails, "":
		for _, o := range objs {
			out = append(out, o)
		}
	case types.ModeDict:
		for _, o := range objs {
			out = append(out, o.ToMap())
		}
	default:
		return nil, fmt.Errorf("%w: unknown output mode %q", types.ErrValidation, mode)
	}
	return out, nil
}

// shortMap renders one object for display: declared extra fields dropped and
// timestamps formatted as fixed date-time strings.
func shortMap(d *types.Descriptor, o types.Object) map[string]any {
	m := o.ToMap()
	for _, k := range d.Extra {
		delete(m, k)
	}
	for _, k := range []string{"created", "updated"} {
		if t, ok := m[k].(time.Time); ok {
			m[k] = t.Format(types.ShortTimeLayout)
		}
	}
	return m
}
