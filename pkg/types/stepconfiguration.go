package types

// StepConfiguration binds one workflow step to the agent or MCP server it
// runs with. Removed with its workflow or project; survives deletion of the
// referenced agent or server with the reference nulled.
type StepConfiguration struct {
	Meta
	ProjectID   string
	WorkflowID  string
	AgentID     string
	McpServerID string
}

func (sc *StepConfiguration) Kind() Kind { return KindStepConfiguration }

func (sc *StepConfiguration) ToMap() map[string]any {
	m := sc.flatMap()
	m["project_id"] = sc.ProjectID
	m["workflow_id"] = sc.WorkflowID
	m["agent_id"] = sc.AgentID
	m["mcp_server_id"] = sc.McpServerID
	return m
}

var stepConfigurationDescriptor = &Descriptor{
	Kind:       KindStepConfiguration,
	Table:      "step_configurations",
	LabelTable: "step_configuration_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "workflow_id", Type: ColText, Ref: &Ref{Kind: KindWorkflow, OnDelete: RefCascade}},
		{Name: "agent_id", Type: ColText, Ref: &Ref{Kind: KindAgent, OnDelete: RefSetNull}},
		{Name: "mcp_server_id", Type: ColText, Ref: &Ref{Kind: KindMcpServer, OnDelete: RefSetNull}},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		sc := &StepConfiguration{Meta: meta}
		if sc.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if sc.WorkflowID, err = takeString(rest, "workflow_id"); err != nil {
			return nil, err
		}
		if sc.AgentID, err = takeString(rest, "agent_id"); err != nil {
			return nil, err
		}
		if sc.McpServerID, err = takeString(rest, "mcp_server_id"); err != nil {
			return nil, err
		}
		sc.Spec = rest
		return sc, nil
	},
}
