package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"yardflow/internal/cache"
	apperrors "yardflow/internal/errors"
	"yardflow/internal/model"
	"yardflow/internal/pagination"
	"yardflow/internal/repository"
)

const motoCacheTTL = 5 * time.Minute

func motoCacheKey(id uint) string {
	return fmt.Sprintf("moto:%d", id)
}

// MotorcycleService exposes motorcycle inventory operations.
type MotorcycleService interface {
	Create(ctx context.Context, moto *model.Motorcycle) (*model.Motorcycle, error)
	Get(ctx context.Context, id uint) (*model.Motorcycle, error)
	List(ctx context.Context, p pagination.Params) ([]model.Motorcycle, pagination.Metadata, error)
	Update(ctx context.Context, moto *model.Motorcycle) error
	Delete(ctx context.Context, id uint) error
}

type motorcycleService struct {
	repo  repository.MotorcycleRepository
	cache *cache.Client
}

// NewMotorcycleService builds a MotorcycleService with repository and cache.
func NewMotorcycleService(repo repository.MotorcycleRepository, cache *cache.Client) MotorcycleService {
	return &motorcycleService{repo: repo, cache: cache}
}

func (s *motorcycleService) Create(ctx context.Context, moto *model.Motorcycle) (*model.Motorcycle, error) {
	if moto.ValorDiaria.IsNegative() {
		return nil, apperrors.ErrNegativeDailyRate
	}
	moto.ID = 0 // the store assigns identifiers
	if err := s.repo.Create(ctx, moto); err != nil {
		return nil, err
	}
	return moto, nil
}

func (s *motorcycleService) Get(ctx context.Context, id uint) (*model.Motorcycle, error) {
	var cached model.Motorcycle
	if s.cache.GetJSON(ctx, motoCacheKey(id), &cached) {
		return &cached, nil
	}

	moto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Moto", id)
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, motoCacheKey(id), moto, motoCacheTTL)
	return moto, nil
}

func (s *motorcycleService) List(ctx context.Context, p pagination.Params) ([]model.Motorcycle, pagination.Metadata, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	motos, err := s.repo.List(ctx, p.Offset(), p.Limit())
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	return motos, pagination.NewMetadata(total, p), nil
}

func (s *motorcycleService) Update(ctx context.Context, moto *model.Motorcycle) error {
	if moto.ValorDiaria.IsNegative() {
		return apperrors.ErrNegativeDailyRate
	}
	exists, err := s.repo.Exists(ctx, moto.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("Moto", moto.ID)
	}
	if err := s.repo.Update(ctx, moto); err != nil {
		return err
	}
	s.cache.Delete(ctx, motoCacheKey(moto.ID))
	return nil
}

func (s *motorcycleService) Delete(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("Moto", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, motoCacheKey(id))
	return nil
}
