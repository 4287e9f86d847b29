package in

import (
	"context"

	"breathe5/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error)
	Active(ctx context.Context) (dto.ActiveOutput, error)
	History(ctx context.Context) (dto.HistoryOutput, error)
	ClearHistory(ctx context.Context) error
}
