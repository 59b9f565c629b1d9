package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "yardflow/internal/errors"
	"yardflow/internal/model"
	"yardflow/internal/pagination"
)

func TestUserService_Get(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)
	user, err := svc.Get(context.Background(), 5)

	assert.Nil(t, user)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Usuário 5 não encontrado.", err.Error())
}

func TestUserService_Update(t *testing.T) {
	t.Run("missing id maps to NotFound", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Exists", mock.Anything, uint(2)).Return(false, nil)

		svc := NewUserService(mockRepo)
		err := svc.Update(context.Background(), &model.User{ID: 2})

		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("existing id updated", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Exists", mock.Anything, uint(2)).Return(true, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo)
		err := svc.Update(context.Background(), &model.User{ID: 2, Nome: "Operador"})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_List(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("List", mock.Anything, 0, 5).Return([]model.User{}, nil)

	svc := NewUserService(mockRepo)
	users, meta, err := svc.List(context.Background(), pagination.Normalize(0, 0))

	assert.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, 0, meta.TotalPages)
}
