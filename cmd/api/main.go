package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-cafe-pos/internal/app"
	"go-cafe-pos/internal/config"
	"go-cafe-pos/internal/handler"
)

func main() {
	// 1. Load Env
	cfg := config.LoadConfig()

	// 2. Open store and wire services
	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer a.Close()
	log.Printf("Store driver: %s", cfg.Store.Driver)

	// 3. Setup WebSocket Hub
	go a.Hub.Run()

	// 4. Setup Fiber
	server := handler.NewServer(a, true)

	// 5. Graceful Shutdown
	go func() {
		if err := server.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
