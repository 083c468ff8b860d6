package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loom/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestNormalizeFilters(t *testing.T) {
	tests := []struct {
		name    string
		in      types.Filters
		want    types.Filters
		wantErr error
	}{
		{
			name: "plain uid passes through",
			in:   types.Filters{UID: "abc"},
			want: types.Filters{UID: "abc"},
		},
		{
			name: "embedded version split out",
			in:   types.Filters{UID: "abc:2"},
			want: types.Filters{UID: "abc", Version: strPtr("2")},
		},
		{
			name: "embedded empty version",
			in:   types.Filters{UID: "abc:"},
			want: types.Filters{UID: "abc", Version: strPtr("")},
		},
		{
			name:    "version given both ways conflicts",
			in:      types.Filters{UID: "abc:2", Version: strPtr("3")},
			wantErr: types.ErrConflict,
		},
		{
			name: "name untouched",
			in:   types.Filters{Name: "with:colon"},
			want: types.Filters{Name: "with:colon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeFilters(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.UID, got.UID)
			assert.Equal(t, tt.want.Name, got.Name)
			if tt.want.Version == nil {
				assert.Nil(t, got.Version)
			} else {
				require.NotNil(t, got.Version)
				assert.Equal(t, *tt.want.Version, *got.Version)
			}
		})
	}
}

func TestIdentClauseUIDWinsOverName(t *testing.T) {
	conds, args := identClause(types.Filters{UID: "u1", Name: "ignored"})
	assert.Equal(t, []string{"uid = ?"}, conds)
	assert.Equal(t, []any{"u1"}, args)
}

func TestIdentClauseVersionNarrows(t *testing.T) {
	conds, args := identClause(types.Filters{Name: "n", Version: strPtr("2")})
	assert.Equal(t, []string{"name = ?", "version = ?"}, conds)
	assert.Equal(t, []any{"n", "2"}, args)
}

func TestResolveMostRecentWins(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	createProject(t, s, "alpha", "1")
	createProject(t, s, "alpha", "2")

	got, err := s.Get(ctx, nil, types.KindProject, types.Filters{Name: "alpha"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2", got.Base().Version, "most recently created version wins")

	v := "1"
	got, err = s.Get(ctx, nil, types.KindProject, types.Filters{Name: "alpha", Version: &v})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1", got.Base().Version)
}

func TestResolveUIDVersionConvention(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := createProject(t, s, "alpha", "3")

	got, err := s.Get(ctx, nil, types.KindProject, types.Filters{UID: p.UID + ":3"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.UID, got.Base().UID)

	// The embedded version must actually match the row.
	got, err = s.Get(ctx, nil, types.KindProject, types.Filters{UID: p.UID + ":9"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveUIDVersionConflictSurfaces(t *testing.T) {
	s := setupStore(t)

	_, err := s.Get(context.Background(), nil, types.KindProject,
		types.Filters{UID: "abc:1", Version: strPtr("2")})
	assert.ErrorIs(t, err, types.ErrConflict)

	err = s.Delete(context.Background(), nil, types.KindProject,
		types.Filters{UID: "abc:1", Version: strPtr("2")})
	assert.ErrorIs(t, err, types.ErrConflict)
}
