package types

// Deployment is a served instance of a workflow, model, agent, or MCP
// server. Removed with its project or workflow; survives deletion of the
// referenced model, agent, or server with the reference nulled.
type Deployment struct {
	Meta
	ProjectID   string
	WorkflowID  string
	ModelID     string
	AgentID     string
	McpServerID string
}

func (d *Deployment) Kind() Kind { return KindDeployment }

func (d *Deployment) ToMap() map[string]any {
	m := d.flatMap()
	m["project_id"] = d.ProjectID
	m["workflow_id"] = d.WorkflowID
	m["model_id"] = d.ModelID
	m["agent_id"] = d.AgentID
	m["mcp_server_id"] = d.McpServerID
	return m
}

var deploymentDescriptor = &Descriptor{
	Kind:       KindDeployment,
	Table:      "deployments",
	LabelTable: "deployment_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "project_id", Type: ColText, NotNull: true, Ref: &Ref{Kind: KindProject, OnDelete: RefCascade}},
		{Name: "workflow_id", Type: ColText, Ref: &Ref{Kind: KindWorkflow, OnDelete: RefCascade}},
		{Name: "model_id", Type: ColText, Ref: &Ref{Kind: KindModel, OnDelete: RefSetNull}},
		{Name: "agent_id", Type: ColText, Ref: &Ref{Kind: KindAgent, OnDelete: RefSetNull}},
		{Name: "mcp_server_id", Type: ColText, Ref: &Ref{Kind: KindMcpServer, OnDelete: RefSetNull}},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		d := &Deployment{Meta: meta}
		if d.ProjectID, err = takeString(rest, "project_id"); err != nil {
			return nil, err
		}
		if d.WorkflowID, err = takeString(rest, "workflow_id"); err != nil {
			return nil, err
		}
		if d.ModelID, err = takeString(rest, "model_id"); err != nil {
			return nil, err
		}
		if d.AgentID, err = takeString(rest, "agent_id"); err != nil {
			return nil, err
		}
		if d.McpServerID, err = takeString(rest, "mcp_server_id"); err != nil {
			return nil, err
		}
		d.Spec = rest
		return d, nil
	},
}
