package repository

import (
	"context"

	"gorm.io/gorm"

	"yardflow/internal/model"
)

// RentalRepository defines rental persistence operations. Rentals are only
// written when quote persistence is enabled.
type RentalRepository interface {
	Create(ctx context.Context, rental *model.Rental) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.Rental, error)
}

type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository builds a GORM-backed repository.
func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *rentalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Rental{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rentalRepository) List(ctx context.Context, offset, limit int) ([]model.Rental, error) {
	var rentals []model.Rental
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}
