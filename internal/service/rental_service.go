package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"yardflow/internal/cache"
	apperrors "yardflow/internal/errors"
	"yardflow/internal/model"
	"yardflow/internal/pagination"
	"yardflow/internal/pricing"
	"yardflow/internal/repository"
)

// Quote is the result of a rental price calculation.
type Quote struct {
	Moto        string      `json:"moto"`
	DataInicial model.Date  `json:"dataInicial"`
	DataFinal   model.Date  `json:"dataFinal"`
	ValorDiaria model.Money `json:"valorDiaria"`
	ValorFinal  model.Money `json:"valorFinal"`
}

// RentalService computes rental quotes and lists stored rentals.
type RentalService interface {
	Calculate(ctx context.Context, motoID uint, start, end model.Date) (*Quote, error)
	List(ctx context.Context, p pagination.Params) ([]model.Rental, pagination.Metadata, error)
}

type rentalService struct {
	motoRepo   repository.MotorcycleRepository
	rentalRepo repository.RentalRepository
	cache      *cache.Client
	policy     pricing.Policy
	persist    bool
}

// NewRentalService builds a RentalService. When persist is set, every
// computed quote is also stored as a rental record.
func NewRentalService(
	motoRepo repository.MotorcycleRepository,
	rentalRepo repository.RentalRepository,
	cache *cache.Client,
	policy pricing.Policy,
	persist bool,
) RentalService {
	return &rentalService{
		motoRepo:   motoRepo,
		rentalRepo: rentalRepo,
		cache:      cache,
		policy:     policy,
		persist:    persist,
	}
}

// Calculate prices a rental: it looks up the motorcycle, derives the billable
// day count from the inclusive date range and multiplies it by the daily
// rate. The store is never written unless persistence is enabled.
func (s *rentalService) Calculate(ctx context.Context, motoID uint, start, end model.Date) (*Quote, error) {
	moto, err := s.findMoto(ctx, motoID)
	if err != nil {
		return nil, err
	}

	days, err := pricing.Days(start, end, s.policy)
	if err != nil {
		return nil, err
	}
	total := pricing.Total(moto.ValorDiaria, days)

	if s.persist {
		rental := &model.Rental{
			MotoID:      moto.ID,
			DataInicial: start,
			DataFinal:   end,
			ValorFinal:  total,
		}
		if err := s.rentalRepo.Create(ctx, rental); err != nil {
			return nil, err
		}
	}

	return &Quote{
		Moto:        moto.Modelo,
		DataInicial: start,
		DataFinal:   end,
		ValorDiaria: moto.ValorDiaria,
		ValorFinal:  total,
	}, nil
}

func (s *rentalService) List(ctx context.Context, p pagination.Params) ([]model.Rental, pagination.Metadata, error) {
	total, err := s.rentalRepo.Count(ctx)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	rentals, err := s.rentalRepo.List(ctx, p.Offset(), p.Limit())
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	return rentals, pagination.NewMetadata(total, p), nil
}

func (s *rentalService) findMoto(ctx context.Context, id uint) (*model.Motorcycle, error) {
	var cached model.Motorcycle
	if s.cache.GetJSON(ctx, motoCacheKey(id), &cached) {
		return &cached, nil
	}
	moto, err := s.motoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Moto", id)
		}
		return nil, err
	}
	s.cache.SetJSON(ctx, motoCacheKey(id), moto, motoCacheTTL)
	return moto, nil
}
