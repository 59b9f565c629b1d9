package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "yardflow/internal/errors"
	"yardflow/internal/model"
	"yardflow/internal/pagination"
	"yardflow/internal/repository"
)

// UserService exposes user account operations.
type UserService interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context, p pagination.Params) ([]model.User, pagination.Metadata, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = 0 // the store assigns identifiers
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Usuário", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, p pagination.Params) ([]model.User, pagination.Metadata, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	users, err := s.repo.List(ctx, p.Offset(), p.Limit())
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	return users, pagination.NewMetadata(total, p), nil
}

func (s *userService) Update(ctx context.Context, user *model.User) error {
	exists, err := s.repo.Exists(ctx, user.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("Usuário", user.ID)
	}
	return s.repo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("Usuário", id)
	}
	return s.repo.Delete(ctx, id)
}
