package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save upserts the order under its ID. Concurrent writers resolve last
// writer wins; there is no version check on the row.
func (r *GormOrderRepository) Save(ctx context.Context, v order.Variant) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(v)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto)
	if result.Error != nil {
		return errs.NewRepositoryBackendFailureErrorWithCause(
			fmt.Sprintf("save order %s", v.ID()), result.Error)
	}

	return nil
}

// Get retrieves an order by ID in whatever state it was stored.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (order.Variant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewOrderNotFoundError(id.String())
		}
		return nil, errs.NewRepositoryBackendFailureErrorWithCause(
			fmt.Sprintf("get order %s", id), err)
	}

	return toDomain(dto)
}

// GetAllCreated retrieves every order still in the Created state.
func (r *GormOrderRepository) GetAllCreated(ctx context.Context) ([]order.Order[order.Created], error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "state = ?", order.StateCreated).Error; err != nil {
		return nil, errs.NewRepositoryBackendFailureErrorWithCause("get created orders", err)
	}

	created := make([]order.Order[order.Created], 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		o, ok := v.(order.Order[order.Created])
		if !ok {
			return nil, errs.NewInvalidOrderTypeError(fmt.Sprintf(
				"row %s carries state %q in the created result set", dto.ID, dto.State))
		}

		created = append(created, o)
	}

	return created, nil
}
