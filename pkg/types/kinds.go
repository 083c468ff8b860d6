package types

// Kind identifies one entity type handled by the generic store.
type Kind string

// Entity kinds.
const (
	KindProject           Kind = "project"
	KindDataSource        Kind = "data_source"
	KindDataset           Kind = "dataset"
	KindModel             Kind = "model"
	KindPrompt            Kind = "prompt"
	KindDocument          Kind = "document"
	KindWorkflow          Kind = "workflow"
	KindAgent             Kind = "agent"
	KindMcpServer         Kind = "mcp_server"
	KindStepConfiguration Kind = "step_configuration"
	KindDeployment        Kind = "deployment"
	KindSchedule          Kind = "schedule"
	KindRun               Kind = "run"
	KindSession           Kind = "session"
	KindUser              Kind = "user"
)

// Kinds lists every entity kind in dependency order: referenced tables
// before referencing tables, so schema DDL can be applied front to back.
var Kinds = []Kind{
	KindUser,
	KindProject,
	KindDataSource,
	KindDataset,
	KindModel,
	KindPrompt,
	KindDocument,
	KindWorkflow,
	KindAgent,
	KindMcpServer,
	KindStepConfiguration,
	KindDeployment,
	KindSchedule,
	KindRun,
	KindSession,
}
