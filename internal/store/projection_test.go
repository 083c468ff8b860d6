package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loom/pkg/types"
)

func TestListModeNames(t *testing.T) {
	s := setupStore(t)

	createProject(t, s, "alpha", "")
	createProject(t, s, "beta", "")

	results, err := s.List(context.Background(), nil, types.KindProject,
		types.ListFilters{}, types.ModeNames)
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{"alpha", "beta"}, results)
}

func TestListModeShortDropsExtras(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := createProject(t, s, "p1", "")
	w := createWorkflow(t, s, p.UID, "w1", "")

	_, err := s.Create(ctx, nil, &types.Run{
		Meta: types.Meta{
			Name: "r1",
			Spec: map[string]any{"logs": []any{"step 1 ok"}, "trigger": "manual"},
		},
		WorkflowID: w.UID,
		State:      types.RunStateSucceeded,
	})
	require.NoError(t, err)

	results, err := s.List(ctx, nil, types.KindRun, types.ListFilters{}, types.ModeShort)
	require.NoError(t, err)
	require.Len(t, results, 1)

	m, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, m, "logs", "bulk fields are dropped in short mode")
	assert.Equal(t, "manual", m["trigger"])
	assert.Equal(t, types.RunStateSucceeded, m["state"])

	created, ok := m["created"].(string)
	require.True(t, ok, "short mode renders timestamps as strings")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, created)
}

func TestListModeDetailsReturnsTypedObjects(t *testing.T) {
	s := setupStore(t)

	createProject(t, s, "alpha", "")

	results, err := s.List(context.Background(), nil, types.KindProject,
		types.ListFilters{}, types.ModeDetails)
	require.NoError(t, err)
	require.Len(t, results, 1)

	p, ok := results[0].(*types.Project)
	require.True(t, ok)
	assert.Equal(t, "alpha", p.Name)
}

func TestListModeDictKeepsEverything(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, nil, &types.Session{
		Meta: types.Meta{
			Name: "chat",
			Spec: map[string]any{"history": []any{"hi"}},
		},
	})
	require.NoError(t, err)

	results, err := s.List(ctx, nil, types.KindSession, types.ListFilters{}, types.ModeDict)
	require.NoError(t, err)
	require.Len(t, results, 1)

	m, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, m, "history", "dict mode keeps bulk fields")
	assert.Equal(t, "chat", m["name"])
}

func TestListModeUnknownRejected(t *testing.T) {
	s := setupStore(t)

	_, err := s.List(context.Background(), nil, types.KindProject,
		types.ListFilters{}, types.OutputMode("csv"))
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestListModeEmptyDefaultsToDetails(t *testing.T) {
	s := setupStore(t)

	createProject(t, s, "alpha", "")

	results, err := s.List(context.Background(), nil, types.KindProject,
		types.ListFilters{}, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	_, ok := results[0].(*types.Project)
	assert.True(t, ok)
}
