package types

// Workflow states.
const (
	WorkflowStateDraft    = "draft"
	WorkflowStateActive   = "active"
	WorkflowStateArchived = "archived"
)

// Workflow is an executable graph definition under a project. Execution is
// delegated to an external graph runtime; the controller only stores the
// definition and its lifecycle state.
type Workflow struct {
	Meta
	ProjectID    string
	WorkflowType string // e.g. "chain", "graph".
	State        string
}

func (w *Workflow) Kind() Kind { return KindWorkflow }

func (w *Workflow) ToMap() map[string]any {
	m := w.flatMap()
	m["project_id"] = w.ProjectID
	m["workflow_type"] = w.WorkflowType
	m["state"] = w.State
	return m
}

var workflowDescriptor = &Descriptor{
	Kind:       KindWorkflow,
	Table:      "workflows",
	LabelTable: "workflow_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "workflow_type", Type: ColText},
		{Name: "state", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		w := &Workflow{Meta: meta}
		if w.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if w.WorkflowType, err = takeString(rest, "workflow_type"); err != nil {
			return nil, err
		}
		if w.State, err = takeString(rest, "state"); err != nil {
			return nil, err
		}
		w.Spec = rest
		return w, nil
	},
}
