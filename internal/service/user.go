package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/models"
	"github.com/avolkov/canteen/internal/mykafka"
	"github.com/avolkov/canteen/internal/repo"
	"github.com/avolkov/canteen/internal/transport"
)

type UserService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

func (s *UserService) CreateUser(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password required", ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}

	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: req.Password,
		Role:     role,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, mykafka.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":   "user_created",
		"userID": user.ID,
		"email":  user.Email,
		"role":   user.Role,
	})

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
