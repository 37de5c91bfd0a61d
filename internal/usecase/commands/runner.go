package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"priceflow/internal/domain/schedule"
	"priceflow/internal/pkg/clock"
	"priceflow/internal/pkg/errs"
	"priceflow/internal/pkg/gid"

	"github.com/google/uuid"
)

// dueBatchSize bounds how many due records one pass picks up.
const dueBatchSize = 10

type ProcessedSchedule struct {
	ID    uuid.UUID
	OK    bool
	Error string
}

type RunReport struct {
	Now       time.Time
	Processed []ProcessedSchedule
}

type ScheduleRunner interface {
	// RunDue executes every currently due schedule of one shop. Safe to
	// call repeatedly or concurrently; records are claimed with a
	// conditional status update, so a record is executed at most once.
	RunDue(ctx context.Context, shop string) (*RunReport, error)
	// RunAllDue is the periodic-trigger entrypoint: one RunDue pass for
	// every shop that has a due schedule.
	RunAllDue(ctx context.Context) error
}

type scheduleRunnerImpl struct {
	repo     ScheduleRepository
	catalogs CatalogClients
	clock    clock.Clock
}

func NewScheduleRunner(repo ScheduleRepository, catalogs CatalogClients, clk clock.Clock) ScheduleRunner {
	return &scheduleRunnerImpl{repo: repo, catalogs: catalogs, clock: clk}
}

func (r *scheduleRunnerImpl) RunDue(ctx context.Context, shop string) (*RunReport, error) {
	now := r.clock.Now()

	due, err := r.repo.FindDue(ctx, shop, now, dueBatchSize)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	report := &RunReport{Now: now, Processed: []ProcessedSchedule{}}

	// Sequential on purpose: one record failing must not disturb the
	// others, and the catalog API is easier on per-product batches than
	// on a burst of parallel mutations.
	for _, rec := range due {
		claimed, err := r.repo.ClaimPending(ctx, rec.ID(), shop)
		if err != nil {
			slog.Warn("failed to claim schedule", "schedule_id", rec.ID(), "shop", shop, "error", err.Error())
			continue
		}
		if !claimed {
			// Another pass owns this record now.
			continue
		}

		if execErr := r.execute(ctx, shop, rec); execErr != nil {
			msg := execErr.Error()
			if markErr := r.repo.MarkFailed(ctx, rec.ID(), shop, msg); markErr != nil {
				slog.Error("failed to mark schedule FAILED", "schedule_id", rec.ID(), "error", markErr.Error())
			}
			report.Processed = append(report.Processed, ProcessedSchedule{ID: rec.ID(), OK: false, Error: msg})
			continue
		}

		if markErr := r.repo.MarkDone(ctx, rec.ID(), shop); markErr != nil {
			slog.Error("failed to mark schedule DONE", "schedule_id", rec.ID(), "error", markErr.Error())
		}

		r.enqueueRevert(ctx, shop, rec)

		report.Processed = append(report.Processed, ProcessedSchedule{ID: rec.ID(), OK: true})
	}

	return report, nil
}

func (r *scheduleRunnerImpl) RunAllDue(ctx context.Context) error {
	shops, err := r.repo.ShopsWithDue(ctx, r.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, shop := range shops {
		report, err := r.RunDue(ctx, shop)
		if err != nil {
			slog.Error("scheduled run failed", "shop", shop, "error", err.Error())
			continue
		}
		for _, p := range report.Processed {
			if p.OK {
				slog.Info("schedule executed", "shop", shop, "schedule_id", p.ID)
			} else {
				slog.Warn("schedule failed", "shop", shop, "schedule_id", p.ID, "error", p.Error)
			}
		}
	}
	return nil
}

// execute applies one claimed record against the catalog. Any returned
// error becomes the record's terminal FAILED message.
func (r *scheduleRunnerImpl) execute(ctx context.Context, shop string, rec *schedule.Record) error {
	items := rec.Payload().Items
	if len(items) == 0 {
		return errs.New("no items found in schedule payload")
	}

	// Group per product, preserving first-seen product order; the bulk
	// mutation operates per product with a batch of variant/price pairs.
	order := make([]string, 0, len(items))
	grouped := make(map[string][]VariantPriceUpdate)

	for i, it := range items {
		if it.ProductID == "" {
			return errs.Newf("item %d: missing productId", i)
		}
		if it.VariantID == "" {
			return errs.Newf("item %d: missing variantId", i)
		}
		if it.NewPrice == "" {
			return errs.Newf("item %d: missing newPrice", i)
		}

		pgid := gid.Product(it.ProductID)
		if _, seen := grouped[pgid]; !seen {
			order = append(order, pgid)
		}
		grouped[pgid] = append(grouped[pgid], VariantPriceUpdate{
			ID:    it.VariantID,
			Price: it.NewPrice,
		})
	}

	api, err := r.catalogs.For(ctx, shop)
	if err != nil {
		return err
	}

	for _, pgid := range order {
		userErrs, err := api.BulkUpdateVariantPrices(ctx, pgid, grouped[pgid])
		if err != nil {
			return err
		}
		if len(userErrs) > 0 {
			return errs.New(joinUserErrors(userErrs))
		}
	}
	return nil
}

// enqueueRevert inserts the companion revert schedule after a successful
// run. Best effort: a revert that cannot be derived or stored is logged,
// the original record stays DONE.
func (r *scheduleRunnerImpl) enqueueRevert(ctx context.Context, shop string, rec *schedule.Record) {
	revertAt := rec.RevertAt()
	if revertAt == nil {
		return
	}

	payload := rec.Payload()
	items, ok := payload.Reversal()
	if !ok {
		slog.Warn("revert skipped: items missing oldPrice", "schedule_id", rec.ID(), "shop", shop)
		return
	}

	revertPayload := schedule.Payload{
		Schedule: schedule.Spec{
			ChangeMode: schedule.ChangeModeLater,
			RunAtIso:   revertAt.UTC().Format(time.RFC3339),
		},
		ProductIDs: payload.ProductIDs,
		Items:      items,
	}

	revertRec, err := schedule.NewRecord(shop, *revertAt, nil, revertPayload)
	if err != nil {
		slog.Warn("revert skipped", "schedule_id", rec.ID(), "error", err.Error())
		return
	}

	if _, err := r.repo.Create(ctx, revertRec); err != nil {
		slog.Error("failed to enqueue revert schedule", "schedule_id", rec.ID(), "error", err.Error())
	}
}

func joinUserErrors(userErrs []UserError) string {
	msgs := make([]string, 0, len(userErrs))
	for _, ue := range userErrs {
		msgs = append(msgs, ue.Message)
	}
	return strings.Join(msgs, ", ")
}
