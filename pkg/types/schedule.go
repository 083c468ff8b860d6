package types

// Schedule triggers a workflow on a cron expression. Removed with its
// workflow; runs started by a schedule outlive it.
type Schedule struct {
	Meta
	WorkflowID string
	Cron       string
}

func (s *Schedule) Kind() Kind { return KindSchedule }

func (s *Schedule) ToMap() map[string]any {
	m := s.flatMap()
	m["workflow_id"] = s.WorkflowID
	m["cron"] = s.Cron
	return m
}

var scheduleDescriptor = &Descriptor{
	Kind:       KindSchedule,
	Table:      "schedules",
	LabelTable: "schedule_labels",
	Versioned:  true,
	Columns: []Column{
		{Name: "workflow_id", Type: ColText, Ref: &Ref{Kind: KindWorkflow, OnDelete: RefCascade}},
		{Name: "cron", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		s := &Schedule{Meta: meta}
		if s.WorkflowID, err = takeString(rest, "workflow_id"); err != nil {
			return nil, err
		}
		if s.Cron, err = takeString(rest, "cron"); err != nil {
			return nil, err
		}
		s.Spec = rest
		return s, nil
	},
}
