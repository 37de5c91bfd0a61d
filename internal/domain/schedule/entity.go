package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrShopRequired        = errors.New("shop is required")
	ErrRunAtRequired       = errors.New("runAt is required")
	ErrRevertNotAfterRunAt = errors.New("revertAt must be after runAt")
	ErrNoItems             = errors.New("items required (variantId + newPrice)")
	ErrItemVariantRequired = errors.New("item missing variantId")
	ErrItemPriceRequired   = errors.New("item missing newPrice")
)

// Record is one persisted deferred price change. Rows are created in
// PENDING by the creator and only ever mutated by the runner.
type Record struct {
	id        uuid.UUID
	shop      string
	createdAt time.Time
	runAt     time.Time
	revertAt  *time.Time
	status    Status
	errMsg    *string
	payload   Payload
}

func NewRecord(shop string, runAt time.Time, revertAt *time.Time, payload Payload) (*Record, error) {
	if shop == "" {
		return nil, ErrShopRequired
	}
	if runAt.IsZero() {
		return nil, ErrRunAtRequired
	}
	if revertAt != nil && !revertAt.After(runAt) {
		return nil, ErrRevertNotAfterRunAt
	}
	if len(payload.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range payload.Items {
		if it.VariantID == "" {
			return nil, ErrItemVariantRequired
		}
		if it.NewPrice == "" {
			return nil, ErrItemPriceRequired
		}
	}

	return &Record{
		id:        uuid.New(),
		shop:      shop,
		createdAt: time.Now().UTC(),
		runAt:     runAt,
		revertAt:  revertAt,
		status:    StatusPending,
		payload:   payload,
	}, nil
}

func ReconstructRecord(
	id uuid.UUID,
	shop string,
	createdAt, runAt time.Time,
	revertAt *time.Time,
	status Status,
	errMsg *string,
	payload Payload,
) *Record {
	return &Record{
		id:        id,
		shop:      shop,
		createdAt: createdAt,
		runAt:     runAt,
		revertAt:  revertAt,
		status:    status,
		errMsg:    errMsg,
		payload:   payload,
	}
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) Shop() string         { return r.shop }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) RunAt() time.Time     { return r.runAt }
func (r *Record) RevertAt() *time.Time { return r.revertAt }
func (r *Record) Status() Status       { return r.status }
func (r *Record) Error() *string       { return r.errMsg }
func (r *Record) Payload() Payload     { return r.payload }

func (r *Record) IsDue(now time.Time) bool {
	return r.status == StatusPending && !r.runAt.After(now)
}
