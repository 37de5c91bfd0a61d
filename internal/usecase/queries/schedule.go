package queries

import (
	"context"
	"time"

	"priceflow/internal/domain/schedule"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ScheduleSummary is the lightweight list projection: counts instead of
// the full payload.
type ScheduleSummary struct {
	ID           uuid.UUID  `json:"id"`
	CreatedAt    time.Time  `json:"createdAt"`
	RunAt        time.Time  `json:"runAt"`
	RevertAt     *time.Time `json:"revertAt,omitempty"`
	Status       string     `json:"status"`
	Error        *string    `json:"error,omitempty"`
	ItemCount    int        `json:"itemCount"`
	ProductCount int        `json:"productCount"`
	ChangeMode   *string    `json:"changeMode,omitempty"`
}

type ScheduleReadStore interface {
	FindByShop(ctx context.Context, shop string, status *string, limit int32) ([]*schedule.Record, error)
}

type ScheduleQueries interface {
	List(ctx context.Context, shop string, limit int, status *string) ([]*ScheduleSummary, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
}

func NewScheduleQueries(store ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{store: store}
}

func (q *scheduleQueriesImpl) List(ctx context.Context, shop string, limit int, status *string) ([]*ScheduleSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := q.store.FindByShop(ctx, shop, status, int32(limit))
	if err != nil {
		return nil, err
	}

	summaries := make([]*ScheduleSummary, len(records))
	for i, rec := range records {
		summaries[i] = toSummary(rec)
	}
	return summaries, nil
}

func toSummary(rec *schedule.Record) *ScheduleSummary {
	payload := rec.Payload()

	var changeMode *string
	if payload.Schedule.ChangeMode != "" {
		m := payload.Schedule.ChangeMode
		changeMode = &m
	}

	return &ScheduleSummary{
		ID:           rec.ID(),
		CreatedAt:    rec.CreatedAt(),
		RunAt:        rec.RunAt(),
		RevertAt:     rec.RevertAt(),
		Status:       rec.Status().String(),
		Error:        rec.Error(),
		ItemCount:    len(payload.Items),
		ProductCount: len(payload.ProductIDs),
		ChangeMode:   changeMode,
	}
}
