package types

// Project is the top-level grouping for all other resources. Deleting a
// project removes every child resource that references it.
type Project struct {
	Meta
	Source string // Origin of the project (e.g. "ui", "sdk", "import").
}

func (p *Project) Kind() Kind { return KindProject }

func (p *Project) ToMap() map[string]any {
	m := p.flatMap()
	m["source"] = p.Source
	return m
}

var projectDescriptor = &Descriptor{
	Kind:       KindProject,
	Table:      "projects",
	LabelTable: "project_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "source", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		p := &Project{Meta: meta}
		if p.Source, err = takeString(rest, "source"); err != nil {
			return nil, err
		}
		p.Spec = rest
		return p, nil
	},
}
