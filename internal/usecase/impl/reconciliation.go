package impl

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	reasonNotOwned         = "variant does not belong to this product"
	reasonDuplicateDelete  = "variant already marked for deletion"
	reasonMarkedForDelete  = "variant is marked for deletion"
	reasonNoStock          = "no stock submitted"
	reasonNegativeStock    = "stock must not be negative"
	reasonSuperseded       = "superseded by a later row for the same variant"
	reasonMissingColorSize = "color and size are required"
)

// StockUpdate is one planned stock write on an existing variant.
type StockUpdate struct {
	VariantID uint
	Stock     int
	Outcome   *entity.RowOutcome
}

// VariantCreate is one planned insert of a new variant.
type VariantCreate struct {
	Color   string
	Size    string
	Stock   int
	Outcome *entity.RowOutcome
}

// MutationPlan is the set of storage mutations one product update resolves to.
// DeleteIDs and the ids of StockUpdates are disjoint.
type MutationPlan struct {
	DeleteIDs      []uint
	DeleteOutcomes []*entity.RowOutcome
	StockUpdates   []StockUpdate
	Creates        []VariantCreate
	Report         *entity.ReconciliationReport
}

// PlanReconciliation partitions the submitted rows against the variant ids the product
// currently owns. Rows that need no storage call are resolved in the report right away;
// planned rows keep an empty status until they are executed.
func PlanReconciliation(productID uint, existingIDs []uint, input *usecase.UpdateProductInput) *MutationPlan {
	owned := make(map[uint]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		owned[id] = struct{}{}
	}

	plan := &MutationPlan{
		Report: &entity.ReconciliationReport{ProductID: productID, Rows: []*entity.RowOutcome{}},
	}
	record := func(outcome *entity.RowOutcome) *entity.RowOutcome {
		plan.Report.Rows = append(plan.Report.Rows, outcome)

		return outcome
	}

	submittedDeletes := make(map[uint]struct{}, len(input.DeleteIDs))
	for i, id := range input.DeleteIDs {
		outcome := record(&entity.RowOutcome{Action: entity.RowActionDelete, VariantID: id, Index: i})

		if _, dup := submittedDeletes[id]; dup {
			outcome.Status, outcome.Reason = entity.RowStatusSkipped, reasonDuplicateDelete

			continue
		}
		submittedDeletes[id] = struct{}{}

		if _, ok := owned[id]; !ok {
			outcome.Status, outcome.Reason = entity.RowStatusNotFound, reasonNotOwned

			continue
		}

		plan.DeleteIDs = append(plan.DeleteIDs, id)
		plan.DeleteOutcomes = append(plan.DeleteOutcomes, outcome)
	}

	lastRow := make(map[uint]int, len(input.ExistingUpdates))
	for i, row := range input.ExistingUpdates {
		if row.Stock != nil && *row.Stock >= 0 {
			lastRow[row.VariantID] = i
		}
	}

	for i, row := range input.ExistingUpdates {
		outcome := record(&entity.RowOutcome{Action: entity.RowActionUpdate, VariantID: row.VariantID, Index: i})

		if _, deleted := submittedDeletes[row.VariantID]; deleted {
			outcome.Status, outcome.Reason = entity.RowStatusSkipped, reasonMarkedForDelete

			continue
		}

		switch _, ok := owned[row.VariantID]; {
		case !ok:
			outcome.Status, outcome.Reason = entity.RowStatusNotFound, reasonNotOwned
		case row.Stock == nil:
			outcome.Status, outcome.Reason = entity.RowStatusSkipped, reasonNoStock
		case *row.Stock < 0:
			outcome.Status, outcome.Reason = entity.RowStatusSkipped, reasonNegativeStock
		case lastRow[row.VariantID] != i:
			outcome.Status, outcome.Reason = entity.RowStatusSkipped, reasonSuperseded
		default:
			plan.StockUpdates = append(plan.StockUpdates, StockUpdate{
				VariantID: row.VariantID,
				Stock:     *row.Stock,
				Outcome:   outcome,
			})
		}
	}

	for i, row := range input.NewVariants {
		outcome := record(&entity.RowOutcome{Action: entity.RowActionCreate, Index: i})
		color, size := strings.TrimSpace(row.Color), strings.TrimSpace(row.Size)

		switch {
		case color == "" || size == "":
			outcome.Status, outcome.Reason = entity.RowStatusSkipped, reasonMissingColorSize
		case row.Stock < 0:
			outcome.Status, outcome.Reason = entity.RowStatusSkipped, reasonNegativeStock
		default:
			plan.Creates = append(plan.Creates, VariantCreate{
				Color:   color,
				Size:    size,
				Stock:   row.Stock,
				Outcome: outcome,
			})
		}
	}

	return plan
}

// IsEmpty reports whether the plan needs no storage call at all.
func (p *MutationPlan) IsEmpty() bool {
	return len(p.DeleteIDs) == 0 && len(p.StockUpdates) == 0 && len(p.Creates) == 0
}

// reconciler applies a MutationPlan. Sub-operations are independent: a failed row
// is recorded and never cancels or undoes its siblings.
type reconciler struct {
	variants    repository.VariantRepository
	concurrency int
	logger      *slog.Logger
}

func (r *reconciler) apply(ctx context.Context, productID uint, plan *MutationPlan) {
	if len(plan.DeleteIDs) > 0 {
		r.applyDeletes(ctx, productID, plan)
	}

	if len(plan.StockUpdates) == 0 && len(plan.Creates) == 0 {
		return
	}

	// Plain Group rather than WithContext: one failing row must not cancel the others.
	var group errgroup.Group
	group.SetLimit(r.concurrency)

	var mu sync.Mutex
	created := make([]uint, 0, len(plan.Creates))

	for _, update := range plan.StockUpdates {
		group.Go(func() error {
			err := r.variants.UpdateStock(ctx, productID, update.VariantID, update.Stock)
			switch {
			case err == nil:
				update.Outcome.Status = entity.RowStatusApplied
			case errors.Is(err, repository.ErrVariantNotFound):
				update.Outcome.Status, update.Outcome.Reason = entity.RowStatusNotFound, "variant no longer exists"
			default:
				r.fail(ctx, update.Outcome, err)
			}

			return nil
		})
	}

	for _, create := range plan.Creates {
		group.Go(func() error {
			variant := &entity.ProductVariant{
				ProductID: productID,
				Color:     create.Color,
				Size:      create.Size,
				Stock:     create.Stock,
			}
			if err := r.variants.Create(ctx, variant); err != nil {
				r.fail(ctx, create.Outcome, err)

				return nil
			}

			create.Outcome.Status = entity.RowStatusApplied
			create.Outcome.VariantID = variant.ID

			mu.Lock()
			created = append(created, variant.ID)
			mu.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	slices.Sort(created)
	r.logger.DebugContext(ctx, "Variant writes finished",
		slog.Uint64("productID", uint64(productID)),
		slog.Int("stockUpdates", len(plan.StockUpdates)),
		slog.Any("createdVariantIDs", created),
	)
}

func (r *reconciler) applyDeletes(ctx context.Context, productID uint, plan *MutationPlan) {
	affected, err := r.variants.DeleteByIDs(ctx, productID, plan.DeleteIDs)
	if err != nil {
		for _, outcome := range plan.DeleteOutcomes {
			r.fail(ctx, outcome, err)
		}

		return
	}

	// Rows removed by a concurrent edit since planning are still absent afterwards.
	if affected != int64(len(plan.DeleteIDs)) {
		r.logger.WarnContext(ctx, "Variant delete affected fewer rows than planned",
			slog.Uint64("productID", uint64(productID)),
			slog.Int("planned", len(plan.DeleteIDs)),
			slog.Int64("affected", affected),
		)
	}

	for _, outcome := range plan.DeleteOutcomes {
		outcome.Status = entity.RowStatusApplied
	}
}

func (r *reconciler) fail(ctx context.Context, outcome *entity.RowOutcome, err error) {
	outcome.Status = entity.RowStatusFailed
	outcome.Reason = "storage write failed"
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
		outcome.Reason = appErr.Error()
	}

	r.logger.ErrorContext(ctx, "Variant row failed",
		slog.String("action", string(outcome.Action)),
		slog.Uint64("variantID", uint64(outcome.VariantID)),
		slog.Int("index", outcome.Index),
		slog.Any("error", err),
	)
}
