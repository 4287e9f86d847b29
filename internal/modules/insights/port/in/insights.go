package in

import (
	"context"

	"breathe5/internal/modules/insights/dto"
)

type Usecase interface {
	Compute(ctx context.Context) (dto.SnapshotOutput, error)
}
