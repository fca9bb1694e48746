package usecases

import "context"

// Notifier is the dispatch seam for failure reports. Failures are logged by
// the caller and never fail the primary operation.
type Notifier interface {
	PanneReported(ctx context.Context, panneID, equipmentID, actorID uint, technicianIDs []uint) error
	PanneResolved(ctx context.Context, panneID, reporterID, actorID uint) error
}

type ReportPanneExecutor interface {
	Execute(ctx context.Context, cmd ReportPanneCommand) (*ReportPanneResult, error)
}

type ResolvePanneExecutor interface {
	Execute(ctx context.Context, cmd ResolvePanneCommand) (*ResolvePanneResult, error)
}

type ListPannesExecutor interface {
	Execute(ctx context.Context, query ListPannesQuery) (*ListPannesResult, error)
}
