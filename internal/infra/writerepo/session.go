package writerepo

import (
	"context"

	"priceflow/internal/infra"
	"priceflow/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionStore struct {
	pool *pgxpool.Pool
}

func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) AccessToken(ctx context.Context, shop string) (string, error) {
	const query = `SELECT access_token FROM shop_sessions WHERE shop = $1`

	var token string
	err := s.pool.QueryRow(ctx, query, shop).Scan(&token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("no session for shop", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load shop session", err)
	}
	return token, nil
}

func (s *SessionStore) Upsert(ctx context.Context, shop, accessToken, scope string) error {
	const query = `
		INSERT INTO shop_sessions (shop, access_token, scope, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (shop)
		DO UPDATE SET access_token = EXCLUDED.access_token,
		              scope = EXCLUDED.scope,
		              updated_at = now()
	`
	if _, err := s.pool.Exec(ctx, query, shop, accessToken, scope); err != nil {
		return infra.WrapRepoErr("failed to upsert shop session", err)
	}
	return nil
}
