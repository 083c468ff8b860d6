package types

// Agent is a configured LLM agent under a project.
type Agent struct {
	Meta
	ProjectID string
	AgentType string // e.g. "react", "router".
}

func (a *Agent) Kind() Kind { return KindAgent }

func (a *Agent) ToMap() map[string]any {
	m := a.flatMap()
	m["project_id"] = a.ProjectID
	m["agent_type"] = a.AgentType
	return m
}

var agentDescriptor = &Descriptor{
	Kind:       KindAgent,
	Table:      "agents",
	LabelTable: "agent_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "agent_type", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		a := &Agent{Meta: meta}
		if a.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if a.AgentType, err = takeString(rest, "agent_type"); err != nil {
			return nil, err
		}
		a.Spec = rest
		return a, nil
	},
}
