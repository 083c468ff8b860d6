package types

// Dataset is a prepared collection of records derived from a data source.
type Dataset struct {
	Meta
	ProjectID   string
	DatasetType string // e.g. "instruction", "preference", "raw".
}

func (d *Dataset) Kind() Kind { return KindDataset }

func (d *Dataset) ToMap() map[string]any {
	m := d.flatMap()
	m["project_id"] = d.ProjectID
	m["dataset_type"] = d.DatasetType
	return m
}

var datasetDescriptor = &Descriptor{
	Kind:       KindDataset,
	Table:      "datasets",
	LabelTable: "dataset_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "dataset_type", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		d := &Dataset{Meta: meta}
		if d.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if d.DatasetType, err = takeString(rest, "dataset_type"); err != nil {
			return nil, err
		}
		d.Spec = rest
		return d, nil
	},
}
