package types

// Model is a trained or imported model registered under a project.
type Model struct {
	Meta
	ProjectID string
	Task      string // e.g. "text-generation", "embedding".
	IsAdapter bool   // True for adapter weights layered on a base model.
}

func (md *Model) Kind() Kind { return KindModel }

func (md *Model) ToMap() map[string]any {
	m := md.flatMap()
	m["project_id"] = md.ProjectID
	m["task"] = md.Task
	m["is_adapter"] = md.IsAdapter
	return m
}

var modelDescriptor = &Descriptor{
	Kind:       KindModel,
	Table:      "models",
	LabelTable: "model_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "task", Type: ColText},
		{Name: "is_adapter", Type: ColBool},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		md := &Model{Meta: meta}
		if md.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if md.Task, err = takeString(rest, "task"); err != nil {
			return nil, err
		}
		if md.IsAdapter, err = takeBool(rest, "is_adapter"); err != nil {
			return nil, err
		}
		md.Spec = rest
		return md, nil
	},
}
