package service

import (
	"context"
	"sync"
	"testing"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"
	"go-cafe-pos/pkg/kvstore"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	sent []ws.Notification
}

func (r *recorder) Notify(n ws.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recorder) last() ws.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return ws.Notification{}
	}
	return r.sent[len(r.sent)-1]
}

type fixture struct {
	store    kvstore.Store
	products repository.ProductRepository
	cart     repository.CartRepository
	txs      repository.TransactionRepository
	notes    *recorder

	catalog  CatalogService
	carts    CartService
	checkout *checkoutService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kvstore.NewMemory()
	f := &fixture{
		store:    store,
		products: repository.NewProductRepo(store),
		cart:     repository.NewCartRepo(store),
		txs:      repository.NewTransactionRepo(store),
		notes:    &recorder{},
	}
	f.catalog = NewCatalogService(f.products, repository.NewCategoryRepo(store), f.notes)
	f.carts = NewCartService(f.cart, f.products, f.notes)
	f.checkout = NewCheckoutService(f.cart, f.txs, f.notes).(*checkoutService)
	return f
}

func (f *fixture) addProduct(t *testing.T, name string, price int64, stock int) *model.Product {
	t.Helper()
	p, err := f.catalog.CreateProduct(context.Background(), ProductInput{
		Name:        name,
		SKU:         "SKU-" + name,
		Description: name + " description",
		Price:       price,
		Stock:       stock,
		Category:    "Beverages",
		Image:       "https://img.example/" + name + ".png",
	})
	require.NoError(t, err)
	return p
}
