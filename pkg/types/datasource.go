package types

// DataSource is an external origin of raw data attached to a project.
type DataSource struct {
	Meta
	ProjectID      string
	DataSourceType string // e.g. "s3", "local", "web".
}

func (d *DataSource) Kind() Kind { return KindDataSource }

func (d *DataSource) ToMap() map[string]any {
	m := d.flatMap()
	m["project_id"] = d.ProjectID
	m["data_source_type"] = d.DataSourceType
	return m
}

var dataSourceDescriptor = &Descriptor{
	Kind:       KindDataSource,
	Table:      "data_sources",
	LabelTable: "data_source_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "data_source_type", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		d := &DataSource{Meta: meta}
		if d.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if d.DataSourceType, err = takeString(rest, "data_source_type"); err != nil {
			return nil, err
		}
		d.Spec = rest
		return d, nil
	},
}
