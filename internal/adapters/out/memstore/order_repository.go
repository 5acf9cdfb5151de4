package memstore

import (
	"context"
	"sync"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// OrderRepository stores flattened order records in a map guarded by a
// single mutex. Save is an unconditional upsert, so two interleaved
// load-modify-save sequences resolve last writer wins.
type OrderRepository struct {
	mu      sync.RWMutex
	records map[string]orderRecord
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		records: make(map[string]orderRecord),
	}
}

// Save upserts the order under its ID, whatever state it is in.
func (r *OrderRepository) Save(_ context.Context, v order.Variant) error {
	if err := v.Validate(); err != nil {
		return err
	}

	rec := recordFromVariant(v)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = rec
	return nil
}

// Get retrieves an order by ID and reconstructs it in its stored state.
// Returns OrderNotFound when no record exists under the ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (order.Variant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	rec, ok := r.records[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewOrderNotFoundError(id.String())
	}

	return variantFromRecord(rec)
}

// GetAllCreated retrieves every order still in the Created state.
func (r *OrderRepository) GetAllCreated(_ context.Context) ([]order.Order[order.Created], error) {
	r.mu.RLock()
	recs := make([]orderRecord, 0)
	for _, rec := range r.records {
		if rec.State == order.StateCreated {
			recs = append(recs, rec)
		}
	}
	r.mu.RUnlock()

	created := make([]order.Order[order.Created], 0, len(recs))
	for _, rec := range recs {
		o, err := orderFromRecord[order.Created](rec)
		if err != nil {
			return nil, err
		}

		created = append(created, o)
	}

	return created, nil
}
