package types

import "fmt"

// RefAction is the declared cascade policy for one parent→child edge.
type RefAction string

const (
	// RefCascade removes the child row when the parent is deleted.
	RefCascade RefAction = "CASCADE"
	// RefSetNull nulls the foreign key and keeps the child row.
	RefSetNull RefAction = "SET NULL"
)

// Ref declares a foreign key from a promoted column to a parent kind's uid.
type Ref struct {
	Kind     Kind
	OnDelete RefAction
}

// ColumnType is the storage type of a promoted column.
type ColumnType string

const (
	ColText ColumnType = "text"
	ColBool ColumnType = "boolean"
)

// Column describes one field promoted out of the spec map into a dedicated
// typed column, so it can be queried and filtered directly.
type Column struct {
	Name    string
	Type    ColumnType
	NotNull bool
	Ref     *Ref
}

// Descriptor enumerates, per entity kind, everything the generic store needs:
// table names, versioning, the promoted columns with their cascade policy,
// the extra fields dropped in short projections, and the typed constructor.
type Descriptor struct {
	Kind       Kind
	Table      string
	LabelTable string
	Versioned  bool
	Columns    []Column
	Extra      []string

	// New validates a flat map (typed columns merged with spec and labels)
	// and constructs the typed object. Fails with ErrValidation when the
	// data does not match the declared shape.
	New func(m map[string]any) (Object, error)
}

// HasColumn reports whether name is a promoted column of this kind.
func (d *Descriptor) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

var descriptors = map[Kind]*Descriptor{
	KindProject:           projectDescriptor,
	KindDataSource:        dataSourceDescriptor,
	KindDataset:           datasetDescriptor,
	KindModel:             modelDescriptor,
	KindPrompt:            promptDescriptor,
	KindDocument:          documentDescriptor,
	KindWorkflow:          workflowDescriptor,
	KindAgent:             agentDescriptor,
	KindMcpServer:         mcpServerDescriptor,
	KindStepConfiguration: stepConfigurationDescriptor,
	KindDeployment:        deploymentDescriptor,
	KindSchedule:          scheduleDescriptor,
	KindRun:               runDescriptor,
	KindSession:           sessionDescriptor,
	KindUser:              userDescriptor,
}

// Lookup returns the descriptor for the given kind.
func Lookup(k Kind) (*Descriptor, error) {
	d, ok := descriptors[k]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrValidation, k)
	}
	return d, nil
}
