package types

// Run states.
const (
	RunStatePending   = "pending"
	RunStateRunning   = "running"
	RunStateSucceeded = "succeeded"
	RunStateFailed    = "failed"
)

// Run is one execution of a workflow. Runs are retained when their workflow
// or schedule is deleted; the references are nulled instead. Step logs live
// in the spec map under "logs" and are dropped in short projections.
type Run struct {
	Meta
	WorkflowID string
	ScheduleID string
	State      string
}

func (r *Run) Kind() Kind { return KindRun }

func (r *Run) ToMap() map[string]any {
	m := r.flatMap()
	m["workflow_id"] = r.WorkflowID
	m["schedule_id"] = r.ScheduleID
	m["state"] = r.State
	return m
}

var runDescriptor = &Descriptor{
	Kind:       KindRun,
	Table:      "runs",
	LabelTable: "run_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "workflow_id", Type: ColText, Ref: &Ref{Kind: KindWorkflow, OnDelete: RefSetNull}},
		{Name: "schedule_id", Type: ColText, Ref: &Ref{Kind: KindSchedule, OnDelete: RefSetNull}},
		{Name: "state", Type: ColText},
	},
	Extra: []string{"logs"},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		r := &Run{Meta: meta}
		if r.WorkflowID, err = takeString(rest, "workflow_id"); err != nil {
			return nil, err
		}
		if r.ScheduleID, err = takeString(rest, "schedule_id"); err != nil {
			return nil, err
		}
		if r.State, err = takeString(rest, "state"); err != nil {
			return nil, err
		}
		r.Spec = rest
		return r, nil
	},
}
