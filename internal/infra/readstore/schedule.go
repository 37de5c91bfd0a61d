package readstore

import (
	"context"
	"encoding/json"

	"priceflow/internal/domain/schedule"
	"priceflow/internal/infra"
	"priceflow/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleReadStore struct {
	pool *pgxpool.Pool
}

func NewScheduleReadStore(pool *pgxpool.Pool) *ScheduleReadStore {
	return &ScheduleReadStore{pool: pool}
}

// FindByShop lists a shop's schedules newest first. A nil status returns
// every schedule regardless of state.
func (s *ScheduleReadStore) FindByShop(ctx context.Context, shop string, status *string, limit int32) ([]*schedule.Record, error) {
	const query = `
		SELECT id, shop, created_at, run_at, revert_at, status, error, payload
		FROM price_schedules
		WHERE shop = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := s.pool.Query(ctx, query, shop, pgconv.StringPtrToPgtype(status), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query schedules", err)
	}
	defer rows.Close()

	var records []*schedule.Record
	for rows.Next() {
		var (
			id        pgtype.UUID
			recShop   string
			createdAt pgtype.Timestamptz
			runAt     pgtype.Timestamptz
			revertAt  pgtype.Timestamptz
			state     string
			errMsg    pgtype.Text
			raw       []byte
		)
		if err := rows.Scan(&id, &recShop, &createdAt, &runAt, &revertAt, &state, &errMsg, &raw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule row", err)
		}

		var payload schedule.Payload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, infra.WrapRepoErr("failed to decode schedule payload", err)
		}

		records = append(records, schedule.ReconstructRecord(
			pgconv.UUIDFromPgtype(id),
			recShop,
			pgconv.TimeFromPgtype(createdAt),
			pgconv.TimeFromPgtype(runAt),
			pgconv.TimePtrFromPgtype(revertAt),
			schedule.Status(state),
			pgconv.StringPtrFromPgtype(errMsg),
			payload,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedules", err)
	}
	return records, nil
}
