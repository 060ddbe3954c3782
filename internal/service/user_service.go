package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"

	"github.com/google/uuid"
)

// UserService manages operator records. There is no edit operation; roles
// are informational and grant nothing.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type CreateUserRequest struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

type userService struct {
	userRepo repository.UserRepository
	notifier Notifier
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepository, n Notifier) UserService {
	return &userService{
		userRepo: userRepo,
		notifier: orNop(n),
		now:      time.Now,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	role := req.Role
	if role == "" {
		role = model.RoleCashier
	}

	user := model.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Role:      role,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := validate(&user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}

	s.notifier.Notify(ws.Success("user.create", "User added", fmt.Sprintf("%s has been added as %s", user.Name, user.Role)))
	return &user, nil
}

// DeleteUser removes the user. An unknown id is not an error.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ws.Success("user.delete", "User deleted", "The user has been removed"))
	return nil
}
