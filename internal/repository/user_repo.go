package repository

import (
	"context"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/pkg/kvstore"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

type userRepo struct {
	c *collection[model.User]
}

func NewUserRepo(store kvstore.Store) UserRepository {
	return &userRepo{newCollection[model.User](store, KeyUsers)}
}

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	return r.c.all(ctx)
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.c.mutate(ctx, func(users []model.User) ([]model.User, error) {
		return append(users, *user), nil
	})
	return err
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	_, err := r.c.mutate(ctx, func(users []model.User) ([]model.User, error) {
		return without(users, func(u model.User) bool { return u.ID == id }), nil
	})
	return err
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(users, func(u model.User) bool { return u.ID == id })
	if i < 0 {
		return nil, ErrUserNotFound
	}
	return &users[i], nil
}
