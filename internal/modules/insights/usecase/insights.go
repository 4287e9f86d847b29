package usecase

import (
	"context"

	"breathe5/internal/modules/insights/domain"
	insightsdto "breathe5/internal/modules/insights/dto"
	insightsin "breathe5/internal/modules/insights/port/in"
	sessiondto "breathe5/internal/modules/session/dto"
	sessionin "breathe5/internal/modules/session/port/in"
	"breathe5/internal/platform/clock"
)

// Interactor recomputes the snapshot from the full history on every call.
// There is no cache and no incremental update; the history is small.
type Interactor struct {
	history sessionin.Usecase
	clock   clock.Clock
}

func NewInteractor(history sessionin.Usecase, clock clock.Clock) insightsin.Usecase {
	return &Interactor{history: history, clock: clock}
}

func (i *Interactor) Compute(ctx context.Context) (insightsdto.SnapshotOutput, error) {
	history, err := i.history.History(ctx)
	if err != nil {
		return insightsdto.SnapshotOutput{}, err
	}

	snap := domain.ComputeSnapshot(toRecords(history.Sessions), i.clock.Now())

	out := insightsdto.SnapshotOutput{
		CompletedSessions: snap.CompletedSessions,
		TotalMinutes:      snap.TotalMinutes,
		LongestSession:    snap.LongestSession,
		CurrentStreak:     snap.CurrentStreak,
		Recommendation:    domain.Recommendation(snap),
		Degraded:          history.Degraded,
	}
	for _, a := range domain.Achievements(snap) {
		out.Achievements = append(out.Achievements, insightsdto.AchievementOutput{
			Name:     a.Name,
			Icon:     a.Icon,
			Unlocked: a.Unlocked,
		})
	}
	return out, nil
}

func toRecords(sessions []sessiondto.StoredSessionOutput) []domain.Record {
	records := make([]domain.Record, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, domain.Record{
			Duration:  s.Duration,
			Completed: s.Completed,
			EndedAt:   s.EndedAt,
		})
	}
	return records
}
