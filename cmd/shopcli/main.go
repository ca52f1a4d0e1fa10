package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"rupeeshop-client/internal/backend"
	"rupeeshop-client/internal/config"
	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/notify"
	"rupeeshop-client/internal/shop"
	"rupeeshop-client/internal/storage"
)

// shopcli runs a scripted browse-and-cart session against the configured
// backend (or the bundled offline catalog) and prints the resulting state.
func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	var adapter backend.Adapter
	if cfg.OfflineMode {
		adapter = backend.NewOffline(nil)
	} else {
		adapter = backend.NewREST(cfg.APIBaseURL, cfg.RequestTimeout)
	}

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.L().Error("failed to open data dir", zap.String("dir", cfg.DataDir), zap.Error(err))
		os.Exit(1)
	}

	s := shop.New(adapter, store, notify.NewLogNotifier())
	s.Init(context.Background())
	defer s.Close()

	products := s.Products()
	fmt.Printf("Catalog (%d products):\n", len(products))
	for _, p := range products {
		fmt.Printf("  [%d] %-35s ₹%.2f  %s (%.1f★, %d reviews)\n",
			p.ID, p.Name, float64(p.Price)/100, p.Brand, p.Rating, len(p.Reviews))
	}

	if len(products) >= 2 {
		s.AddToCart(products[0], 2)
		s.AddToCart(products[1], 1)
		s.AddToCart(products[0], 1)
	}

	fmt.Println("\nCart:")
	for _, item := range s.Cart() {
		fmt.Printf("  %dx %s\n", item.Quantity, item.Product.Name)
	}
	fmt.Printf("Total: ₹%.2f\n", float64(s.CartTotal())/100)
}
