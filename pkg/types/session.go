package types

// Session is a chat session owned by a user. The message history lives in
// the spec map under "history" and is dropped in short projections. Sessions
// are not versioned.
type Session struct {
	Meta
}

func (s *Session) Kind() Kind { return KindSession }

func (s *Session) ToMap() map[string]any {
	return s.flatMap()
}

var sessionDescriptor = &Descriptor{
	Kind:       KindSession,
	Table:      "sessions",
	LabelTable: "session_labels",
	Versioned:  false,
	Extra:      []string{"history"},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		s := &Session{Meta: meta}
		s.Spec = rest
		return s, nil
	},
}
