package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"priceflow/internal/domain/schedule"
	"priceflow/internal/infra"
	"priceflow/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) Create(ctx context.Context, rec *schedule.Record) (uuid.UUID, error) {
	payload, err := json.Marshal(rec.Payload())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode schedule payload", err)
	}

	const query = `
		INSERT INTO price_schedules (id, shop, created_at, run_at, revert_at, status, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(rec.ID()),
		rec.Shop(),
		pgconv.TimeToPgtype(rec.CreatedAt()),
		pgconv.TimeToPgtype(rec.RunAt()),
		pgconv.TimePtrToPgtype(rec.RevertAt()),
		rec.Status().String(),
		payload,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert schedule", err)
	}
	return rec.ID(), nil
}

func (r *ScheduleRepository) FindDue(ctx context.Context, shop string, now time.Time, limit int32) ([]*schedule.Record, error) {
	const query = `
		SELECT id, shop, created_at, run_at, revert_at, status, error, payload
		FROM price_schedules
		WHERE shop = $1 AND status = 'PENDING' AND run_at <= $2
		ORDER BY run_at ASC
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, shop, pgconv.TimeToPgtype(now), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query due schedules", err)
	}
	defer rows.Close()

	var records []*schedule.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read due schedules", err)
	}
	return records, nil
}

func (r *ScheduleRepository) ClaimPending(ctx context.Context, id uuid.UUID, shop string) (bool, error) {
	const query = `
		UPDATE price_schedules
		SET status = 'RUNNING', error = NULL
		WHERE id = $1 AND shop = $2 AND status = 'PENDING'
	`
	tag, err := r.pool.Exec(ctx, query, pgconv.UUIDToPgtype(id), shop)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim schedule", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ScheduleRepository) MarkDone(ctx context.Context, id uuid.UUID, shop string) error {
	const query = `
		UPDATE price_schedules
		SET status = 'DONE', error = NULL
		WHERE id = $1 AND shop = $2
	`
	if _, err := r.pool.Exec(ctx, query, pgconv.UUIDToPgtype(id), shop); err != nil {
		return infra.WrapRepoErr("failed to mark schedule done", err)
	}
	return nil
}

func (r *ScheduleRepository) MarkFailed(ctx context.Context, id uuid.UUID, shop string, msg string) error {
	const query = `
		UPDATE price_schedules
		SET status = 'FAILED', error = $3
		WHERE id = $1 AND shop = $2
	`
	if _, err := r.pool.Exec(ctx, query, pgconv.UUIDToPgtype(id), shop, msg); err != nil {
		return infra.WrapRepoErr("failed to mark schedule failed", err)
	}
	return nil
}

func (r *ScheduleRepository) ShopsWithDue(ctx context.Context, now time.Time) ([]string, error) {
	const query = `
		SELECT DISTINCT shop
		FROM price_schedules
		WHERE status = 'PENDING' AND run_at <= $1
	`
	rows, err := r.pool.Query(ctx, query, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query shops with due schedules", err)
	}
	defer rows.Close()

	var shops []string
	for rows.Next() {
		var shop string
		if err := rows.Scan(&shop); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop", err)
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read shops with due schedules", err)
	}
	return shops, nil
}
