package writerepo

import (
	"encoding/json"

	"priceflow/internal/domain/schedule"
	"priceflow/internal/infra"
	"priceflow/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanRecord(row pgx.Row) (*schedule.Record, error) {
	var (
		id        pgtype.UUID
		shop      string
		createdAt pgtype.Timestamptz
		runAt     pgtype.Timestamptz
		revertAt  pgtype.Timestamptz
		status    string
		errMsg    pgtype.Text
		raw       []byte
	)
	if err := row.Scan(&id, &shop, &createdAt, &runAt, &revertAt, &status, &errMsg, &raw); err != nil {
		return nil, infra.WrapRepoErr("failed to scan schedule row", err)
	}

	var payload schedule.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, infra.WrapRepoErr("failed to decode schedule payload", err)
	}

	return schedule.ReconstructRecord(
		pgconv.UUIDFromPgtype(id),
		shop,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(runAt),
		pgconv.TimePtrFromPgtype(revertAt),
		schedule.Status(status),
		pgconv.StringPtrFromPgtype(errMsg),
		payload,
	), nil
}
