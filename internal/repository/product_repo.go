package repository

import (
	"context"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/pkg/kvstore"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id string, apply func(*model.Product) error) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepo struct {
	c *collection[model.Product]
}

func NewProductRepo(store kvstore.Store) ProductRepository {
	return &productRepo{newCollection[model.Product](store, KeyProducts)}
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.c.all(ctx)
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(products, func(p model.Product) bool { return p.ID == id })
	if i < 0 {
		return nil, ErrProductNotFound
	}
	return &products[i], nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	_, err := r.c.mutate(ctx, func(products []model.Product) ([]model.Product, error) {
		return append(products, *product), nil
	})
	return err
}

// Update applies fn to the stored record in place. The id is restored after
// fn runs so it can never change.
func (r *productRepo) Update(ctx context.Context, id string, apply func(*model.Product) error) (*model.Product, error) {
	var updated model.Product
	_, err := r.c.mutate(ctx, func(products []model.Product) ([]model.Product, error) {
		i := indexOf(products, func(p model.Product) bool { return p.ID == id })
		if i < 0 {
			return nil, ErrProductNotFound
		}
		next := products[i]
		if err := apply(&next); err != nil {
			return nil, err
		}
		next.ID = id
		products[i] = next
		updated = next
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	_, err := r.c.mutate(ctx, func(products []model.Product) ([]model.Product, error) {
		return without(products, func(p model.Product) bool { return p.ID == id }), nil
	})
	return err
}
