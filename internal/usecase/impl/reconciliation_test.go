package impl

import (
	"context"
	"sync/atomic"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func findRow(report *entity.ReconciliationReport, action entity.RowAction, index int) *entity.RowOutcome {
	for _, row := range report.Rows {
		if row.Action == action && row.Index == index {
			return row
		}
	}

	return nil
}

func TestPlanReconciliation_Scenario(t *testing.T) {
	// P has V1(Red,M,3) and V2(Red,L,0); delete V2, restock V1, add (Blue,S,7).
	input := &usecase.UpdateProductInput{
		ExistingUpdates: []usecase.ExistingVariantUpdate{{VariantID: 1, Stock: intPtr(10)}},
		DeleteIDs:       []uint{2},
		NewVariants:     []usecase.NewVariantInput{{Color: "Blue", Size: "S", Stock: 7}},
	}

	plan := PlanReconciliation(9, []uint{1, 2}, input)

	assert.Equal(t, []uint{2}, plan.DeleteIDs)
	require.Len(t, plan.StockUpdates, 1)
	assert.Equal(t, uint(1), plan.StockUpdates[0].VariantID)
	assert.Equal(t, 10, plan.StockUpdates[0].Stock)
	require.Len(t, plan.Creates, 1)
	assert.Equal(t, VariantCreate{Color: "Blue", Size: "S", Stock: 7, Outcome: plan.Creates[0].Outcome}, plan.Creates[0])
	assert.Len(t, plan.Report.Rows, 3)
	assert.Equal(t, uint(9), plan.Report.ProductID)
}

func TestPlanReconciliation_DeleteWinsOverUpdate(t *testing.T) {
	input := &usecase.UpdateProductInput{
		ExistingUpdates: []usecase.ExistingVariantUpdate{
			{VariantID: 1, Stock: intPtr(4)},
			{VariantID: 2, Stock: intPtr(8)},
		},
		DeleteIDs: []uint{1},
	}

	plan := PlanReconciliation(9, []uint{1, 2}, input)

	assert.Equal(t, []uint{1}, plan.DeleteIDs)
	require.Len(t, plan.StockUpdates, 1)
	assert.Equal(t, uint(2), plan.StockUpdates[0].VariantID)

	skipped := findRow(plan.Report, entity.RowActionUpdate, 0)
	require.NotNil(t, skipped)
	assert.Equal(t, entity.RowStatusSkipped, skipped.Status)
	assert.Equal(t, reasonMarkedForDelete, skipped.Reason)
}

func TestPlanReconciliation_ForeignVariantsAreNotFound(t *testing.T) {
	input := &usecase.UpdateProductInput{
		ExistingUpdates: []usecase.ExistingVariantUpdate{{VariantID: 77, Stock: intPtr(1)}},
		DeleteIDs:       []uint{88},
	}

	plan := PlanReconciliation(9, []uint{1}, input)

	assert.True(t, plan.IsEmpty())
	assert.Equal(t, entity.RowStatusNotFound, findRow(plan.Report, entity.RowActionDelete, 0).Status)
	assert.Equal(t, entity.RowStatusNotFound, findRow(plan.Report, entity.RowActionUpdate, 0).Status)
}

func TestPlanReconciliation_RowLevelSkips(t *testing.T) {
	input := &usecase.UpdateProductInput{
		ExistingUpdates: []usecase.ExistingVariantUpdate{
			{VariantID: 1, Stock: nil},
			{VariantID: 2, Stock: intPtr(-1)},
			{VariantID: 3, Stock: intPtr(5)},
			{VariantID: 3, Stock: intPtr(6)},
		},
		DeleteIDs: []uint{4, 4},
		NewVariants: []usecase.NewVariantInput{
			{Color: " ", Size: "M", Stock: 1},
			{Color: "Red", Size: "", Stock: 1},
			{Color: "Red", Size: "M", Stock: -2},
			{Color: " Green ", Size: " XL ", Stock: 0},
		},
	}

	plan := PlanReconciliation(9, []uint{1, 2, 3, 4}, input)

	assert.Equal(t, []uint{4}, plan.DeleteIDs)
	assert.Equal(t, reasonDuplicateDelete, findRow(plan.Report, entity.RowActionDelete, 1).Reason)

	assert.Equal(t, reasonNoStock, findRow(plan.Report, entity.RowActionUpdate, 0).Reason)
	assert.Equal(t, reasonNegativeStock, findRow(plan.Report, entity.RowActionUpdate, 1).Reason)
	assert.Equal(t, reasonSuperseded, findRow(plan.Report, entity.RowActionUpdate, 2).Reason)
	require.Len(t, plan.StockUpdates, 1)
	assert.Equal(t, 6, plan.StockUpdates[0].Stock)

	assert.Equal(t, reasonMissingColorSize, findRow(plan.Report, entity.RowActionCreate, 0).Reason)
	assert.Equal(t, reasonMissingColorSize, findRow(plan.Report, entity.RowActionCreate, 1).Reason)
	assert.Equal(t, reasonNegativeStock, findRow(plan.Report, entity.RowActionCreate, 2).Reason)
	require.Len(t, plan.Creates, 1)
	assert.Equal(t, "Green", plan.Creates[0].Color)
	assert.Equal(t, "XL", plan.Creates[0].Size)
	assert.Equal(t, 0, plan.Creates[0].Stock)
}

func TestPlanReconciliation_NoVariantsAtAll(t *testing.T) {
	plan := PlanReconciliation(9, nil, &usecase.UpdateProductInput{})

	assert.True(t, plan.IsEmpty())
	assert.Empty(t, plan.Report.Rows)
	assert.False(t, plan.Report.HasFailures())
}

func TestPlanReconciliation_DeletingEveryVariant(t *testing.T) {
	plan := PlanReconciliation(9, []uint{1, 2}, &usecase.UpdateProductInput{DeleteIDs: []uint{2, 1}})

	assert.Equal(t, []uint{2, 1}, plan.DeleteIDs)
	assert.Empty(t, plan.StockUpdates)
	assert.Empty(t, plan.Creates)
}

func TestReconciler_Apply(t *testing.T) {
	ctx := context.Background()
	variants := mockRepo.NewMockVariantRepository(t)

	plan := PlanReconciliation(9, []uint{1, 2}, &usecase.UpdateProductInput{
		ExistingUpdates: []usecase.ExistingVariantUpdate{{VariantID: 1, Stock: intPtr(10)}},
		DeleteIDs:       []uint{2},
		NewVariants:     []usecase.NewVariantInput{{Color: "Blue", Size: "S", Stock: 7}},
	})

	variants.EXPECT().DeleteByIDs(ctx, uint(9), []uint{2}).Return(1, nil)
	variants.EXPECT().UpdateStock(ctx, uint(9), uint(1), 10).Return(nil)
	variants.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.ProductVariant) bool {
			return v.ProductID == 9 && v.Color == "Blue" && v.Size == "S" && v.Stock == 7
		})).
		Run(func(_ context.Context, v *entity.ProductVariant) { v.ID = 3 }).
		Return(nil)

	rec := &reconciler{variants: variants, concurrency: 2, logger: newDiscardLogger()}
	rec.apply(ctx, 9, plan)

	report := plan.Report
	assert.False(t, report.HasFailures())
	assert.Equal(t, 1, report.Count(entity.RowActionDelete, entity.RowStatusApplied))
	assert.Equal(t, 1, report.Count(entity.RowActionUpdate, entity.RowStatusApplied))
	assert.Equal(t, 1, report.Count(entity.RowActionCreate, entity.RowStatusApplied))
	assert.Equal(t, uint(3), findRow(report, entity.RowActionCreate, 0).VariantID)
}

func TestReconciler_FailuresAreIndependent(t *testing.T) {
	ctx := context.Background()
	variants := mockRepo.NewMockVariantRepository(t)

	plan := PlanReconciliation(9, []uint{1, 2, 3}, &usecase.UpdateProductInput{
		ExistingUpdates: []usecase.ExistingVariantUpdate{
			{VariantID: 1, Stock: intPtr(1)},
			{VariantID: 2, Stock: intPtr(2)},
			{VariantID: 3, Stock: intPtr(3)},
		},
	})

	variants.EXPECT().UpdateStock(ctx, uint(9), uint(1), 1).Return(nil)
	variants.EXPECT().UpdateStock(ctx, uint(9), uint(2), 2).Return(errors.New("connection reset"))
	variants.EXPECT().UpdateStock(ctx, uint(9), uint(3), 3).Return(repository.ErrVariantNotFound)

	rec := &reconciler{variants: variants, concurrency: 1, logger: newDiscardLogger()}
	rec.apply(ctx, 9, plan)

	assert.Equal(t, entity.RowStatusApplied, findRow(plan.Report, entity.RowActionUpdate, 0).Status)

	failed := findRow(plan.Report, entity.RowActionUpdate, 1)
	assert.Equal(t, entity.RowStatusFailed, failed.Status)
	assert.Equal(t, "storage write failed", failed.Reason)

	assert.Equal(t, entity.RowStatusNotFound, findRow(plan.Report, entity.RowActionUpdate, 2).Status)
	assert.Len(t, plan.Report.Failed(), 1)
}

func TestReconciler_BatchDeleteFailureMarksEveryDeleteRow(t *testing.T) {
	ctx := context.Background()
	variants := mockRepo.NewMockVariantRepository(t)

	plan := PlanReconciliation(9, []uint{1, 2}, &usecase.UpdateProductInput{DeleteIDs: []uint{1, 2}})
	variants.EXPECT().DeleteByIDs(ctx, uint(9), []uint{1, 2}).Return(0, errors.New("deadlock"))

	rec := &reconciler{variants: variants, concurrency: 4, logger: newDiscardLogger()}
	rec.apply(ctx, 9, plan)

	assert.Equal(t, 2, plan.Report.Count(entity.RowActionDelete, entity.RowStatusFailed))
}

func TestReconciler_RespectsConcurrencyLimit(t *testing.T) {
	ctx := context.Background()
	variants := mockRepo.NewMockVariantRepository(t)

	var inFlight, peak atomic.Int32
	track := func(context.Context, *entity.ProductVariant) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		inFlight.Add(-1)
	}

	newRows := make([]usecase.NewVariantInput, 8)
	for i := range newRows {
		newRows[i] = usecase.NewVariantInput{Color: "Red", Size: "M", Stock: i}
	}
	plan := PlanReconciliation(9, nil, &usecase.UpdateProductInput{NewVariants: newRows})

	variants.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ProductVariant")).Run(track).Return(nil).Times(8)

	rec := &reconciler{variants: variants, concurrency: 2, logger: newDiscardLogger()}
	rec.apply(ctx, 9, plan)

	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, 8, plan.Report.Count(entity.RowActionCreate, entity.RowStatusApplied))
}
