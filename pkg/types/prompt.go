package types

// Prompt is a versioned prompt template registered under a project.
type Prompt struct {
	Meta
	ProjectID  string
	PromptType string // e.g. "chat", "completion".
}

func (p *Prompt) Kind() Kind { return KindPrompt }

func (p *Prompt) ToMap() map[string]any {
	m := p.flatMap()
	m["project_id"] = p.ProjectID
	m["prompt_type"] = p.PromptType
	return m
}

var promptDescriptor = &Descriptor{
	Kind:       KindPrompt,
	Table:      "prompts",
	LabelTable: "prompt_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "prompt_type", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		p := &Prompt{Meta: meta}
		if p.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if p.PromptType, err = takeString(rest, "prompt_type"); err != nil {
			return nil, err
		}
		p.Spec = rest
		return p, nil
	},
}
