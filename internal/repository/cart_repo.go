package repository

import (
	"context"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/pkg/kvstore"
)

type CartRepository interface {
	FindAll(ctx context.Context) ([]model.CartLine, error)
	// Mutate rewrites the cart with whatever fn returns. An error from fn
	// leaves the stored cart unchanged.
	Mutate(ctx context.Context, fn func([]model.CartLine) ([]model.CartLine, error)) ([]model.CartLine, error)
	Clear(ctx context.Context) error
}

type cartRepo struct {
	c *collection[model.CartLine]
}

func NewCartRepo(store kvstore.Store) CartRepository {
	return &cartRepo{newCollection[model.CartLine](store, KeyCartItems)}
}

func (r *cartRepo) FindAll(ctx context.Context) ([]model.CartLine, error) {
	return r.c.all(ctx)
}

func (r *cartRepo) Mutate(ctx context.Context, fn func([]model.CartLine) ([]model.CartLine, error)) ([]model.CartLine, error) {
	return r.c.mutate(ctx, fn)
}

func (r *cartRepo) Clear(ctx context.Context) error {
	_, err := r.c.mutate(ctx, func([]model.CartLine) ([]model.CartLine, error) {
		return []model.CartLine{}, nil
	})
	return err
}
