package usecases

import "context"

type CreateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd CreateEquipmentCommand) (*CreateEquipmentResult, error)
}

type GetEquipmentExecutor interface {
	Execute(ctx context.Context, query GetEquipmentQuery) (*GetEquipmentResult, error)
}

type ListEquipmentExecutor interface {
	Execute(ctx context.Context, query ListEquipmentQuery) (*ListEquipmentResult, error)
}

type UpdateEquipmentStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateEquipmentStatusCommand) (*UpdateEquipmentStatusResult, error)
}
