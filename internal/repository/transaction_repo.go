package repository

import (
	"context"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/pkg/kvstore"
)

type TransactionRepository interface {
	FindAll(ctx context.Context) ([]model.Transaction, error)
	Append(ctx context.Context, tx *model.Transaction) error
}

type transactionRepo struct {
	c *collection[model.Transaction]
}

func NewTransactionRepo(store kvstore.Store) TransactionRepository {
	return &transactionRepo{newCollection[model.Transaction](store, KeyTransactions)}
}

func (r *transactionRepo) FindAll(ctx context.Context) ([]model.Transaction, error) {
	return r.c.all(ctx)
}

func (r *transactionRepo) Append(ctx context.Context, tx *model.Transaction) error {
	_, err := r.c.mutate(ctx, func(txs []model.Transaction) ([]model.Transaction, error) {
		return append(txs, *tx), nil
	})
	return err
}
