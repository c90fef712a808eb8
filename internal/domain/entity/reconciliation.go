package entity

// RowAction names the mutation applied to one reconciliation row.
type RowAction string

const (
	RowActionDelete RowAction = "delete"
	RowActionUpdate RowAction = "update_stock"
	RowActionCreate RowAction = "create"
)

// RowStatus is the outcome of one reconciliation row.
type RowStatus string

const (
	RowStatusApplied  RowStatus = "applied"
	RowStatusNotFound RowStatus = "not_found"
	RowStatusSkipped  RowStatus = "skipped"
	RowStatusFailed   RowStatus = "failed"
)

// RowOutcome reports what happened to a single submitted row.
// VariantID is zero for rows that declared a new variant and were not inserted.
type RowOutcome struct {
	Action    RowAction `json:"action"`
	VariantID uint      `json:"variant_id,omitempty"`
	Index     int       `json:"index"` // Position in the submitted row list of that action.
	Status    RowStatus `json:"status"`
	Reason    string    `json:"reason,omitempty"`
}

// ReconciliationReport collects every row outcome of one product update.
type ReconciliationReport struct {
	ProductID uint          `json:"product_id"`
	Rows      []*RowOutcome `json:"rows"`
}

// Failed returns the rows whose mutation failed at the storage layer.
func (r *ReconciliationReport) Failed() []*RowOutcome {
	var failed []*RowOutcome
	for _, row := range r.Rows {
		if row.Status == RowStatusFailed {
			failed = append(failed, row)
		}
	}

	return failed
}

// HasFailures reports whether at least one row failed.
func (r *ReconciliationReport) HasFailures() bool {
	return len(r.Failed()) > 0
}

// Count returns how many rows carry the given action and status.
func (r *ReconciliationReport) Count(action RowAction, status RowStatus) int {
	n := 0
	for _, row := range r.Rows {
		if row.Action == action && row.Status == status {
			n++
		}
	}

	return n
}
