package types

// User is an account that can own other entities. Users are not versioned;
// their name is globally unique.
type User struct {
	Meta
	Email string
	Role  string // e.g. "admin", "member".
}

func (u *User) Kind() Kind { return KindUser }

func (u *User) ToMap() map[string]any {
	m := u.flatMap()
	m["email"] = u.Email
	m["role"] = u.Role
	return m
}

var userDescriptor = &Descriptor{
	Kind:       KindUser,
	Table:      "users",
	LabelTable: "user_labels",
	Versioned:  false,
	Columns: []Column{
		{Name: "email", Type: ColText},
		{Name: "role", Type: ColText},
	},
	New: func(m map[string]any) (Object, error) {
		meta, rest, err := decodeMeta(m)
		if err != nil {
			return nil, err
		}
		u := &User{Meta: meta}
		if u.Email, err = takeString(rest, "email"); err != nil {
			return nil, err
		}
		if u.Role, err = takeString(rest, "role"); err != nil {
			return nil, err
		}
		u.Spec = rest
		return u, nil
	},
}
