package repository

import (
	"context"

	"gorm.io/gorm"

	"yardflow/internal/model"
)

// MotorcycleRepository defines motorcycle persistence operations.
type MotorcycleRepository interface {
	Create(ctx context.Context, moto *model.Motorcycle) error
	Update(ctx context.Context, moto *model.Motorcycle) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Motorcycle, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.Motorcycle, error)
}

type motorcycleRepository struct {
	db *gorm.DB
}

// NewMotorcycleRepository builds a GORM-backed repository.
func NewMotorcycleRepository(db *gorm.DB) MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(ctx context.Context, moto *model.Motorcycle) error {
	return r.db.WithContext(ctx).Create(moto).Error
}

func (r *motorcycleRepository) Update(ctx context.Context, moto *model.Motorcycle) error {
	return r.db.WithContext(ctx).Save(moto).Error
}

func (r *motorcycleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Motorcycle{}, id).Error
}

func (r *motorcycleRepository) FindByID(ctx context.Context, id uint) (*model.Motorcycle, error) {
	var moto model.Motorcycle
	if err := r.db.WithContext(ctx).First(&moto, id).Error; err != nil {
		return nil, err
	}
	return &moto, nil
}

func (r *motorcycleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Motorcycle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *motorcycleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Motorcycle{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *motorcycleRepository) List(ctx context.Context, offset, limit int) ([]model.Motorcycle, error) {
	var motos []model.Motorcycle
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&motos).Error; err != nil {
		return nil, err
	}
	return motos, nil
}
