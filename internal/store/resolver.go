package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/loomworks/loom/pkg/types"
)

// normalizeFilters splits a version embedded in the uid ("uid:version") into
// the version field. A version supplied both ways is a conflict.
func normalizeFilters(f types.Filters) (types.Filters, error) {
	i := strings.IndexByte(f.UID, ':')
	if i < 0 {
		return f, nil
	}
	if f.Version != nil {
		return f, fmt.Errorf("%w: version %q given separately and embedded in uid %q",
			types.ErrConflict, *f.Version, f.UID)
	}
	embedded := f.UID[i+1:]
	f.UID = f.UID[:i]
	f.Version = &embedded
	return f, nil
}

// identClause builds the WHERE conjunction for a partial identity. A uid
// filters exactly; otherwise the name does; a version narrows either.
func identClause(f types.Filters) (conds []string, args []any) {
	if f.UID != "" {
		conds = append(conds, "uid = ?")
		args = append(args, f.UID)
	} else if f.Name != "" {
		conds = append(conds, "name = ?")
		args = append(args, f.Name)
	}
	if f.Version != nil {
		conds = append(conds, "version = ?")
		args = append(args, *f.Version)
	}
	return conds, args
}

// resolve determines which stored row a partial identity refers to and
// returns its flat map, or nil when nothing matches. When several rows still
// match (several versions under one name with no version filter) the most
// recently created row wins.
func (s *Store) resolve(ctx context.Context, q queryer, d *types.Descriptor, f types.Filters) (map[string]any, error) {
	f, err := normalizeFilters(f)
	if err != nil {
		return nil, err
	}

	conds, args := identClause(f)
	query := "SELECT " + strings.Join(selectColumns(d), ", ") + " FROM " + d.Table
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created DESC, uid DESC LIMIT 1"

	flat, err := scanFlat(d, q.QueryRowContext(ctx, s.rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return flat, nil
}
