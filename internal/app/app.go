// Package app wires the store, repositories and services from a Config. It is
// shared by the HTTP server and the operator CLI.
package app

import (
	"context"
	"fmt"
	"log"

	"go-cafe-pos/internal/config"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"
	"go-cafe-pos/internal/ws"
	"go-cafe-pos/pkg/database"
	"go-cafe-pos/pkg/kvstore"

	"github.com/redis/go-redis/v9"
)

type App struct {
	Store kvstore.Store
	Hub   *ws.Hub

	Catalog    service.CatalogService
	Cart       service.CartService
	Checkout   service.CheckoutService
	Users      service.UserService
	Promotions service.PromotionService
	Reports    service.ReportService

	closers []func() error
}

// OpenStore returns the backend selected by cfg.Store.Driver and a func that
// releases it.
func OpenStore(ctx context.Context, cfg config.Config) (kvstore.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case "memory":
		return kvstore.NewMemory(), noop, nil

	case "sqlite", "postgres":
		dsn := cfg.DB.SQLitePath
		if cfg.Store.Driver == "postgres" {
			dsn = cfg.DB.PostgresDSN()
		}
		db, err := database.ConnectDB(cfg.Store.Driver, dsn)
		if err != nil {
			return nil, nil, err
		}
		if err := kvstore.Migrate(db); err != nil {
			return nil, nil, fmt.Errorf("migrate kv_entries: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewGormStore(db), sqlDB.Close, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		log.Printf("Redis connection established (%s)", cfg.Redis.Addr)
		return kvstore.NewRedisStore(rdb, cfg.Redis.Prefix), rdb.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

// New opens the configured store and builds every service on top of it.
// Discounts and fees always live in a process-local store.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a, err := NewWithStore(ctx, store)
	if err != nil {
		closeStore()
		return nil, err
	}
	a.closers = append(a.closers, closeStore)
	return a, nil
}

// NewWithStore builds the services over an already opened store.
func NewWithStore(ctx context.Context, store kvstore.Store) (*App, error) {
	hub := ws.NewHub()

	productRepo := repository.NewProductRepo(store)
	categoryRepo := repository.NewCategoryRepo(store)
	cartRepo := repository.NewCartRepo(store)
	userRepo := repository.NewUserRepo(store)
	txRepo := repository.NewTransactionRepo(store)

	promoStore := kvstore.NewMemory()
	discountRepo, err := repository.NewDiscountRepo(ctx, promoStore)
	if err != nil {
		return nil, err
	}
	feeRepo, err := repository.NewFeeRepo(ctx, promoStore)
	if err != nil {
		return nil, err
	}

	return &App{
		Store:      store,
		Hub:        hub,
		Catalog:    service.NewCatalogService(productRepo, categoryRepo, hub),
		Cart:       service.NewCartService(cartRepo, productRepo, hub),
		Checkout:   service.NewCheckoutService(cartRepo, txRepo, hub),
		Users:      service.NewUserService(userRepo, hub),
		Promotions: service.NewPromotionService(discountRepo, feeRepo, hub),
		Reports:    service.NewReportService(txRepo),
	}, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
