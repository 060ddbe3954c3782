package service

import (
	"context"
	"fmt"
	"strings"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/ws"

	"github.com/google/uuid"
)

const (
	DefaultPerPage = 8
	CategoryAll    = "All"
)

type CatalogService interface {
	ListProducts(ctx context.Context, q ProductQuery) (*ProductPage, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type ProductQuery struct {
	Category string
	Query    string
	Page     int
	PerPage  int
}

type ProductPage struct {
	Items      []model.Product `json:"items"`
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}

type ProductInput struct {
	Name        string   `json:"name"`
	SKU         string   `json:"sku"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
}

// ProductPatch carries the fields of an edit. Nil fields keep the stored
// value.
type ProductPatch struct {
	Name        *string   `json:"name"`
	SKU         *string   `json:"sku"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price"`
	Stock       *int      `json:"stock"`
	Category    *string   `json:"category"`
	Image       *string   `json:"image"`
	Gallery     *[]string `json:"gallery"`
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	notifier     Notifier
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, n Notifier) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		notifier:     orNop(n),
	}
}

func (s *catalogService) ListProducts(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterProducts(products, q.Category, q.Query)
	perPage := q.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	items, totalPages := Paginate(filtered, page, perPage)

	return &ProductPage{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      len(filtered),
		TotalPages: totalPages,
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	product := model.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Image:       in.Image,
		Gallery:     in.Gallery,
	}
	if err := validate(&product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, &product); err != nil {
		return nil, err
	}

	s.notifier.Notify(ws.Success("product.create", "Product added", fmt.Sprintf("%s has been added to the catalog", product.Name)))
	return &product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*model.Product, error) {
	updated, err := s.productRepo.Update(ctx, id, func(p *model.Product) error {
		patch.apply(p)
		return validate(p)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ws.Success("product.update", "Product updated", fmt.Sprintf("%s has been updated", updated.Name)))
	return updated, nil
}

// DeleteProduct removes the product. An unknown id is not an error.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ws.Success("product.delete", "Product deleted", "The product has been removed"))
	return nil
}

func (p ProductPatch) apply(dst *model.Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.SKU != nil {
		dst.SKU = *p.SKU
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Image != nil && strings.TrimSpace(*p.Image) != "" {
		dst.Image = *p.Image
	}
	if p.Gallery != nil && len(*p.Gallery) > 0 {
		dst.Gallery = *p.Gallery
	}
}

// ListCategories seeds the defaults when no category exists yet.
func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.SeedIfEmpty(ctx, model.DefaultCategories())
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validate(&model.Category{Name: name}); err != nil {
		return nil, err
	}
	created, err := s.categoryRepo.Create(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("category.create", "Category added", created.Name))
	return created, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id int64, name string) (*model.Category, error) {
	if err := validate(&model.Category{ID: id, Name: name}); err != nil {
		return nil, err
	}
	updated, err := s.categoryRepo.Update(ctx, id, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ws.Success("category.update", "Category updated", updated.Name))
	return updated, nil
}

// DeleteCategory leaves products that reference the name untouched.
func (s *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ws.Success("category.delete", "Category deleted", "The category has been removed"))
	return nil
}

// FilterProducts keeps products in category ("" or "All" for every
// category) whose name, description or SKU contains query, ignoring case.
func FilterProducts(products []model.Product, category, query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paginate returns the 1-based page of items and the number of pages.
func Paginate[T any](items []T, page, perPage int) ([]T, int) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	totalPages := (len(items) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
