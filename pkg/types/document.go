package types

// Document is a stored document attached to a project. The document body
// lives in the spec map under "content" and is dropped in short projections.
type Document struct {
	Meta
	ProjectID    string
	DocumentType string // e.g. "markdown", "pdf".
}

func (d *Document) Kind() Kind { return KindDocument }

func (d *Document) ToMap() map[string]any {
	m := d.flatMap()
	m["project_id"] = d.ProjectID
	m["document_type"] = d.DocumentType
	return m
}

var documentDescriptor = &Descriptor{
	Kind:       KindDocument,
	Table:      "documents",
	LabelTable: "document_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "document_type", Type: ColText},
	},
	Extra: []string{"content"},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		d := &Document{Meta: meta}
		if d.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if d.DocumentType, err = takeString(rest, "document_type"); err != nil {
			return nil, err
		}
		d.Spec = rest
		return d, nil
	},
}
