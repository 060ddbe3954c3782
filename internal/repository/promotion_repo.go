package repository

import (
	"context"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/pkg/kvstore"
)

type DiscountRepository interface {
	FindAll(ctx context.Context) ([]model.Discount, error)
	Create(ctx context.Context, d *model.Discount) error
	Update(ctx context.Context, id int64, apply func(*model.Discount)) (*model.Discount, error)
	Delete(ctx context.Context, id int64) error
}

type FeeRepository interface {
	FindAll(ctx context.Context) ([]model.Fee, error)
	Create(ctx context.Context, f *model.Fee) error
	Update(ctx context.Context, id int64, apply func(*model.Fee)) (*model.Fee, error)
	Delete(ctx context.Context, id int64) error
}

type discountRepo struct {
	c *collection[model.Discount]
}

// NewDiscountRepo seeds the store with the default discount when it holds
// none.
func NewDiscountRepo(ctx context.Context, store kvstore.Store) (DiscountRepository, error) {
	r := &discountRepo{newCollection[model.Discount](store, KeyDiscounts)}
	if _, err := r.c.seedIfEmpty(ctx, model.DefaultDiscounts()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *discountRepo) FindAll(ctx context.Context) ([]model.Discount, error) {
	return r.c.all(ctx)
}

// Create assigns d.ID.
func (r *discountRepo) Create(ctx context.Context, d *model.Discount) error {
	_, err := r.c.mutate(ctx, func(items []model.Discount) ([]model.Discount, error) {
		d.ID = nextID(items, func(x model.Discount) int64 { return x.ID })
		return append(items, *d), nil
	})
	return err
}

func (r *discountRepo) Update(ctx context.Context, id int64, apply func(*model.Discount)) (*model.Discount, error) {
	var updated model.Discount
	_, err := r.c.mutate(ctx, func(items []model.Discount) ([]model.Discount, error) {
		i := indexOf(items, func(x model.Discount) bool { return x.ID == id })
		if i < 0 {
			return nil, ErrDiscountNotFound
		}
		apply(&items[i])
		items[i].ID = id
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *discountRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.c.mutate(ctx, func(items []model.Discount) ([]model.Discount, error) {
		return without(items, func(x model.Discount) bool { return x.ID == id }), nil
	})
	return err
}

type feeRepo struct {
	c *collection[model.Fee]
}

// NewFeeRepo seeds the store with the default fee when it holds none.
func NewFeeRepo(ctx context.Context, store kvstore.Store) (FeeRepository, error) {
	r := &feeRepo{newCollection[model.Fee](store, KeyFees)}
	if _, err := r.c.seedIfEmpty(ctx, model.DefaultFees()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *feeRepo) FindAll(ctx context.Context) ([]model.Fee, error) {
	return r.c.all(ctx)
}

// Create assigns f.ID.
func (r *feeRepo) Create(ctx context.Context, f *model.Fee) error {
	_, err := r.c.mutate(ctx, func(items []model.Fee) ([]model.Fee, error) {
		f.ID = nextID(items, func(x model.Fee) int64 { return x.ID })
		return append(items, *f), nil
	})
	return err
}

func (r *feeRepo) Update(ctx context.Context, id int64, apply func(*model.Fee)) (*model.Fee, error) {
	var updated model.Fee
	_, err := r.c.mutate(ctx, func(items []model.Fee) ([]model.Fee, error) {
		i := indexOf(items, func(x model.Fee) bool { return x.ID == id })
		if i < 0 {
			return nil, ErrFeeNotFound
		}
		apply(&items[i])
		items[i].ID = id
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *feeRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.c.mutate(ctx, func(items []model.Fee) ([]model.Fee, error) {
		return without(items, func(x model.Fee) bool { return x.ID == id }), nil
	})
	return err
}
