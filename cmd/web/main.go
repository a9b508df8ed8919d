package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ShopLite/internal/admin"
	"ShopLite/internal/catalog"
	"ShopLite/internal/shop"
	"ShopLite/internal/view"
	"ShopLite/internal/web"
	"ShopLite/pkg/kit"
)

func main() {
	service := "web"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	_ = godotenv.Load()

	port := getenv("PORT", "3000")

	v, err := view.New()
	if err != nil {
		log.Fatal("parse templates failed", zap.Error(err))
	}

	store := catalog.NewStore()

	shopSrv := &shop.Server{Store: store, View: v, Log: log}
	adminSrv := &admin.Server{Store: store, View: v, Log: log}

	reg := prometheus.NewRegistry()
	h, err := web.NewHandler(shopSrv, adminSrv, v, web.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})
	if err != nil {
		log.Fatal("init web handler failed", zap.Error(err))
	}

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
