package services

import (
	"context"
	"strings"

	"kadima-pos/models"
	"kadima-pos/utils"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// CreateUser registers a cashier or admin under merchantID.
func (s *UserService) CreateUser(ctx context.Context, merchantID string, req models.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleCashier
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		Role:       role,
		MerchantID: merchantID,
		FullName:   req.FullName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, merchantID string, page, limit int) ([]models.User, models.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, total, err := s.users.ListByMerchant(ctx, merchantID, page, limit)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}
	return users, models.NewPaginationMeta(page, limit, total), nil
}
