package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/mock"
	"inkwell/backend/internal/service"
)

func TestUserService_ListUsers_ClampsPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(users)
	ctx := context.Background()

	filter := repository.UserListFilter{Query: "ada", Limit: service.MaxPageSize, Offset: 0}
	users.EXPECT().List(ctx, filter).Return([]model.User{{ID: 1}}, nil)
	users.EXPECT().Count(ctx, filter).Return(1, nil)

	page, err := svc.ListUsers(ctx, " ada ", "", service.Page{Limit: 500, Offset: -3})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Len(t, page.Users, 1)
}

func TestUserService_ListUsers_DefaultPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(users)
	ctx := context.Background()

	filter := repository.UserListFilter{Role: model.RoleAdmin, Limit: service.DefaultPageSize}
	users.EXPECT().List(ctx, filter).Return(nil, nil)
	users.EXPECT().Count(ctx, filter).Return(0, nil)

	_, err := svc.ListUsers(ctx, "", model.RoleAdmin, service.Page{})
	require.NoError(t, err)

	_, err = svc.ListUsers(ctx, "", "owner", service.Page{})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestUserService_CannotDeleteSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(users)

	err := svc.DeleteUser(context.Background(), 7, 7)
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestUserService_CannotDemoteSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(users)

	_, err := svc.UpdateRole(context.Background(), 7, 7, model.RoleUser)
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestUserService_UpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(users)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().GetByID(ctx, int64(9)).Return(model.User{ID: 9, Role: model.RoleUser}, nil),
		users.EXPECT().UpdateRole(ctx, int64(9), model.RoleAdmin).Return(nil),
		users.EXPECT().GetByID(ctx, int64(9)).Return(model.User{ID: 9, Role: model.RoleAdmin}, nil),
	)

	user, err := svc.UpdateRole(ctx, 7, 9, model.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, user.Role)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(users)
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, int64(9)).Return(model.User{}, fmt.Errorf("get user: %w", sql.ErrNoRows))

	err := svc.DeleteUser(ctx, 7, 9)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestUserService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(users)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "new@example.com").Return(model.User{}, sql.ErrNoRows)
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
		require.Equal(t, "new@example.com", u.Email)
		require.Equal(t, model.RoleUser, u.Role)
		require.NotEqual(t, "password123", u.PasswordHash)
		u.ID = 42
		return u, nil
	})

	user, err := svc.CreateUser(ctx, service.CreateUserInput{Email: "New@example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)
}
