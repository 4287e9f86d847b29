package in

import (
	"context"

	insightsdto "breathe5/internal/modules/insights/dto"
	insightsin "breathe5/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Compute(ctx context.Context) (insightsdto.SnapshotOutput, error) {
	return h.usecase.Compute(ctx)
}
