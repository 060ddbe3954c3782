package service

import (
	"context"
	"errors"
	"fmt"

	"go-cafe-pos/internal/metrics"
	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"
)

type CartService interface {
	GetCart(ctx context.Context) (*CartView, error)
	AddItem(ctx context.Context, productID string) (*CartView, error)
	SetQuantity(ctx context.Context, productID string, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, productID string) (*CartView, error)
	Clear(ctx context.Context) error
}

type CartView struct {
	Items  []model.CartLine `json:"items"`
	Totals model.CartTotals `json:"totals"`
}

func newCartView(lines []model.CartLine) *CartView {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return &CartView{Items: lines, Totals: model.ComputeTotals(lines)}
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	notifier    Notifier
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, n Notifier) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		notifier:    orNop(n),
	}
}

func (s *cartService) GetCart(ctx context.Context) (*CartView, error) {
	lines, err := s.cartRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newCartView(lines), nil
}

// AddItem puts one unit of the product in the cart. The product's current
// stock caps the line quantity.
func (s *cartService) AddItem(ctx context.Context, productID string) (view *CartView, err error) {
	defer func() { metrics.RecordCartOp("add", err) }()

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock() {
		s.notifier.Notify(ws.Failure("cart.add", "Out of stock", fmt.Sprintf("%s is out of stock", product.Name)))
		return nil, ErrOutOfStock
	}

	lines, err := s.cartRepo.Mutate(ctx, func(lines []model.CartLine) ([]model.CartLine, error) {
		for i := range lines {
			if lines[i].ID != product.ID {
				continue
			}
			if lines[i].Quantity >= product.Stock {
				return nil, ErrStockLimitReached
			}
			lines[i].Quantity++
			return lines, nil
		}
		return append(lines, model.CartLine{Product: *product, Quantity: 1}), nil
	})
	if err != nil {
		if errors.Is(err, ErrStockLimitReached) {
			s.notifier.Notify(ws.Failure("cart.add", "Stock limit reached", fmt.Sprintf("Only %d of %s available", product.Stock, product.Name)))
		}
		return nil, err
	}

	s.notifier.Notify(ws.Success("cart.add", "Added to cart", fmt.Sprintf("%s has been added to your cart", product.Name)))
	return newCartView(lines), nil
}

// SetQuantity overwrites a line's quantity. Values below 1 become 1 and the
// stock is not checked again.
func (s *cartService) SetQuantity(ctx context.Context, productID string, quantity int) (view *CartView, err error) {
	defer func() { metrics.RecordCartOp("set_quantity", err) }()

	if quantity < 1 {
		quantity = 1
	}
	lines, err := s.cartRepo.Mutate(ctx, func(lines []model.CartLine) ([]model.CartLine, error) {
		for i := range lines {
			if lines[i].ID == productID {
				lines[i].Quantity = quantity
				return lines, nil
			}
		}
		return nil, ErrCartLineNotFound
	})
	if err != nil {
		return nil, err
	}
	return newCartView(lines), nil
}

func (s *cartService) RemoveItem(ctx context.Context, productID string) (view *CartView, err error) {
	defer func() { metrics.RecordCartOp("remove", err) }()

	lines, err := s.cartRepo.Mutate(ctx, func(lines []model.CartLine) ([]model.CartLine, error) {
		out := lines[:0]
		for _, l := range lines {
			if l.ID != productID {
				out = append(out, l)
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("cart.remove", "Removed from cart", "The item has been removed from your cart"))
	return newCartView(lines), nil
}

func (s *cartService) Clear(ctx context.Context) (err error) {
	defer func() { metrics.RecordCartOp("clear", err) }()
	return s.cartRepo.Clear(ctx)
}
