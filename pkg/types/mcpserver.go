package types

// McpServer is a registered MCP tool server under a project.
type McpServer struct {
	Meta
	ProjectID string
	Transport string // e.g. "stdio", "sse", "http".
}

func (s *McpServer) Kind() Kind { return KindMcpServer }

func (s *McpServer) ToMap() map[string]any {
	m := s.flatMap()
	m["project_id"] = s.ProjectID
	m["transport"] = s.Transport
	return m
}

var mcpServerDescriptor = &Descriptor{
	Kind:       KindMcpServer,
	Table:      "mcp_servers",
	LabelTable: "mcp_server_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "transport", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		s := &McpServer{Meta: meta}
		if s.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if s.Transport, err = takeString(rest, "transport"); err != nil {
			return nil, err
		}
		s.Spec = rest
		return s, nil
	},
}
