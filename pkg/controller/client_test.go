package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loom/pkg/types"
)

func setupClient(t *testing.T) *Client {
	t.Helper()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	c, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestTypedWrappers(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	p, err := c.CreateProject(ctx, &types.Project{
		Meta:   types.Meta{Name: "alpha"},
		Source: "sdk",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.UID)

	got, err := c.GetProject(ctx, types.Filters{Name: "alpha"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.UID, got.UID)
	assert.Equal(t, "sdk", got.Source)

	missing, err := c.GetProject(ctx, types.Filters{Name: "nope"})
	require.NoError(t, err)
	assert.Nil(t, missing, "typed wrappers keep nil for not found")
}

func TestGenericLifecycle(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	p, err := c.CreateProject(ctx, &types.Project{Meta: types.Meta{Name: "p1"}})
	require.NoError(t, err)

	w, err := c.CreateWorkflow(ctx, &types.Workflow{
		Meta:      types.Meta{Name: "w1"},
		ProjectID: p.UID,
		State:     types.WorkflowStateDraft,
	})
	require.NoError(t, err)

	updated, err := c.Update(ctx, types.KindWorkflow, types.Filters{UID: w.UID},
		map[string]any{"state": types.WorkflowStateActive})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, types.WorkflowStateActive, updated.(*types.Workflow).State)

	names, err := c.List(ctx, types.KindWorkflow, types.ListFilters{}, types.ModeNames)
	require.NoError(t, err)
	assert.Equal(t, []any{"w1"}, names)

	require.NoError(t, c.Delete(ctx, types.KindWorkflow, types.Filters{UID: w.UID}))

	gone, err := c.GetWorkflow(ctx, types.Filters{UID: w.UID})
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestClientTxVariants(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	tx, err := c.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = c.CreateTx(ctx, tx, &types.Project{Meta: types.Meta{Name: "staged"}})
	require.NoError(t, err)

	// Visible inside the transaction.
	inside, err := c.GetTx(ctx, tx, types.KindProject, types.Filters{Name: "staged"})
	require.NoError(t, err)
	require.NotNil(t, inside)

	require.NoError(t, tx.Commit())

	after, err := c.GetProject(ctx, types.Filters{Name: "staged"})
	require.NoError(t, err)
	assert.NotNil(t, after)
}
