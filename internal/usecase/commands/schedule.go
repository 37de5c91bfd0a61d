package commands

import (
	"context"
	"time"

	"priceflow/internal/domain/schedule"
	reqdto "priceflow/internal/handler/dto/request"
	"priceflow/internal/infra"
	"priceflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrScheduleDetailsMissing  = errs.New("schedule details missing")
	ErrItemsRequired           = errs.New("items required (variantId + newPrice)")
	ErrInvalidRunAt            = errs.New("invalid runAtIso")
	ErrInvalidRevertAt         = errs.New("invalid revertAtIso")
	ErrRevertBeforeRunAt       = errs.New("revertAtIso must be after runAtIso")
	ErrVariantNotResolved      = errs.New("variant product could not be resolved")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ScheduleCommands interface {
	Create(ctx context.Context, shop string, req reqdto.CreateScheduleRequest) (uuid.UUID, error)
}

type scheduleCommandsImpl struct {
	repo     ScheduleRepository
	catalogs CatalogClients
}

func NewScheduleCommands(repo ScheduleRepository, catalogs CatalogClients) ScheduleCommands {
	return &scheduleCommandsImpl{repo: repo, catalogs: catalogs}
}

// Create validates a deferred change request, resolves each item's owning
// product and inserts a PENDING record. All-or-nothing: any failure means
// nothing is persisted. Immediate ("now") changes never reach this path.
func (s *scheduleCommandsImpl) Create(ctx context.Context, shop string, req reqdto.CreateScheduleRequest) (uuid.UUID, error) {
	spec := req.Schedule
	if spec.ChangeMode != schedule.ChangeModeLater || spec.RunAtIso == "" {
		return uuid.Nil, ErrScheduleDetailsMissing
	}

	if len(req.Items) == 0 {
		return uuid.Nil, ErrItemsRequired
	}
	for _, it := range req.Items {
		if it.VariantID == "" || it.NewPrice == "" {
			return uuid.Nil, ErrItemsRequired
		}
	}

	runAt, err := time.Parse(time.RFC3339, spec.RunAtIso)
	if err != nil {
		return uuid.Nil, ErrInvalidRunAt
	}

	var revertAt *time.Time
	if spec.RevertEnabled && spec.RevertAtIso != "" {
		t, err := time.Parse(time.RFC3339, spec.RevertAtIso)
		if err != nil {
			return uuid.Nil, ErrInvalidRevertAt
		}
		if !t.After(runAt) {
			return uuid.Nil, ErrRevertBeforeRunAt
		}
		revertAt = &t
	}

	items, err := s.resolveProductIDs(ctx, shop, req.Items, req.ProductIDs)
	if err != nil {
		return uuid.Nil, err
	}

	payload := req.ToPayload()
	payload.Items = items

	rec, err := schedule.NewRecord(shop, runAt, revertAt, payload)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrScheduleDetailsMissing)
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

// resolveProductIDs fills in each item's owning product. Items missing a
// product id fall back to a single top-level product id when exactly one
// was supplied; otherwise the catalog is asked, with resolutions cached
// per variant for the duration of this call.
func (s *scheduleCommandsImpl) resolveProductIDs(ctx context.Context, shop string, items []schedule.Item, productIDs []string) ([]schedule.Item, error) {
	var fallback string
	if len(productIDs) == 1 {
		fallback = productIDs[0]
	}

	resolved := make([]schedule.Item, len(items))
	copy(resolved, items)

	var api CatalogAPI
	cache := make(map[string]string)

	for i := range resolved {
		if resolved[i].ProductID != "" {
			continue
		}
		if fallback != "" {
			resolved[i].ProductID = fallback
			continue
		}

		if pid, ok := cache[resolved[i].VariantID]; ok {
			resolved[i].ProductID = pid
			continue
		}

		if api == nil {
			var err error
			api, err = s.catalogs.For(ctx, shop)
			if err != nil {
				return nil, errs.Mark(err, ErrVariantNotResolved)
			}
		}

		pid, err := api.ResolveProductForVariant(ctx, resolved[i].VariantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(errs.Newf("variant %s: product not found", resolved[i].VariantID), ErrVariantNotResolved)
			}
			return nil, errs.Mark(err, ErrVariantNotResolved)
		}

		cache[resolved[i].VariantID] = pid
		resolved[i].ProductID = pid
	}

	return resolved, nil
}
