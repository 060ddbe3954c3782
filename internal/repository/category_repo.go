package repository

import (
	"context"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/pkg/kvstore"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	SeedIfEmpty(ctx context.Context, defaults []model.Category) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id int64, name string) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepo struct {
	c *collection[model.Category]
}

func NewCategoryRepo(store kvstore.Store) CategoryRepository {
	return &categoryRepo{newCollection[model.Category](store, KeyCategories)}
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	return r.c.all(ctx)
}

func (r *categoryRepo) SeedIfEmpty(ctx context.Context, defaults []model.Category) ([]model.Category, error) {
	return r.c.seedIfEmpty(ctx, defaults)
}

func (r *categoryRepo) Create(ctx context.Context, name string) (*model.Category, error) {
	var created model.Category
	_, err := r.c.mutate(ctx, func(cats []model.Category) ([]model.Category, error) {
		created = model.Category{
			ID:   nextID(cats, func(c model.Category) int64 { return c.ID }),
			Name: name,
		}
		return append(cats, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *categoryRepo) Update(ctx context.Context, id int64, name string) (*model.Category, error) {
	var updated model.Category
	_, err := r.c.mutate(ctx, func(cats []model.Category) ([]model.Category, error) {
		i := indexOf(cats, func(c model.Category) bool { return c.ID == id })
		if i < 0 {
			return nil, ErrCategoryNotFound
		}
		cats[i].Name = name
		updated = cats[i]
		return cats, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete does not touch products that still name the category.
func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.c.mutate(ctx, func(cats []model.Category) ([]model.Category, error) {
		return without(cats, func(c model.Category) bool { return c.ID == id }), nil
	})
	return err
}
