package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loom/pkg/types"
)

func TestToRecordSplitsColumnsAndSpec(t *testing.T) {
	d, err := types.Lookup(types.KindModel)
	require.NoError(t, err)

	now := time.Now().UTC()
	m := &types.Model{
		Meta: types.Meta{
			UID:     "u1",
			Name:    "llama",
			Version: "3",
			Created: now,
			Updated: now,
			Spec:    map[string]any{"base_model": "llama-3-8b"},
			Labels:  map[string]string{"stage": "eval"},
		},
		ProjectID: "p1",
		Task:      "text-generation",
		IsAdapter: true,
	}

	rec, err := toRecord(d, m)
	require.NoError(t, err)

	assert.Equal(t, "u1", rec.uid)
	assert.Equal(t, "llama", rec.name)
	assert.Equal(t, "3", rec.version)
	assert.Nil(t, rec.ownerID)
	assert.Equal(t, "p1", rec.cols["project_id"])
	assert.Equal(t, "text-generation", rec.cols["task"])
	assert.Equal(t, int64(1), rec.cols["is_adapter"])
	assert.Equal(t, map[string]string{"stage": "eval"}, rec.labels)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(rec.spec, &spec))
	assert.Equal(t, map[string]any{"base_model": "llama-3-8b"}, spec,
		"promoted and identity fields stay out of spec")
}

func TestColumnValue(t *testing.T) {
	text := types.Column{Name: "task", Type: types.ColText}
	boolean := types.Column{Name: "is_adapter", Type: types.ColBool}

	tests := []struct {
		name    string
		col     types.Column
		in      any
		want    any
		wantErr bool
	}{
		{name: "nil passes through", col: text, in: nil, want: nil},
		{name: "text kept", col: text, in: "embedding", want: "embedding"},
		{name: "empty text becomes null", col: text, in: "", want: nil},
		{name: "text rejects non-string", col: text, in: 7, wantErr: true},
		{name: "true becomes 1", col: boolean, in: true, want: int64(1)},
		{name: "false becomes 0", col: boolean, in: false, want: int64(0)},
		{name: "bool rejects string", col: boolean, in: "yes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := columnValue(tt.col, tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitPatchRouting(t *testing.T) {
	d, err := types.Lookup(types.KindWorkflow)
	require.NoError(t, err)

	p, err := splitPatch(d, map[string]any{
		"name":        "renamed",
		"description": "",
		"state":       "active",
		"nested":      map[string]any{"k": "v"},
		"skipped":     nil,
		"uid":         "ignored",
		"labels":      map[string]any{"a": "1", "b": nil},
	})
	require.NoError(t, err)

	assert.Equal(t, "renamed", p.cols["name"])
	assert.Nil(t, p.cols["description"], "empty description clears the column")
	assert.Equal(t, "active", p.cols["state"])
	assert.NotContains(t, p.cols, "uid")

	assert.Equal(t, map[string]any{"nested": map[string]any{"k": "v"}}, p.spec)
	assert.NotContains(t, p.spec, "skipped", "nil spec values leave spec untouched")

	assert.Equal(t, map[string]any{"a": "1", "b": nil}, p.labels)
}

func TestSplitPatchRejectsBadTypes(t *testing.T) {
	d, err := types.Lookup(types.KindWorkflow)
	require.NoError(t, err)

	_, err = splitPatch(d, map[string]any{"version": 2})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = splitPatch(d, map[string]any{"labels": "not-a-map"})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestSelectColumnsOrder(t *testing.T) {
	d, err := types.Lookup(types.KindSchedule)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"uid", "name", "version", "owner_id", "description",
		"created", "updated", "spec", "workflow_id", "cron",
	}, selectColumns(d))
}
