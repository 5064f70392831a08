package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/client"
	"github.com/iyhunko/product-catalog/internal/config"
	"github.com/iyhunko/product-catalog/internal/http/web"
	"github.com/iyhunko/product-catalog/internal/logger"
	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/presentation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadWebFromEnv()
	handleErr("loading config", err)
	logger.InitJSONLogger(conf.DebugMode)
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	catalogAPI := client.New(conf.CatalogAPI.URL, conf.CatalogAPI.Timeout)
	handler := web.NewHandler(catalogAPI, presentation.DefaultTheme(), presentation.Breakpoints{Medium: conf.Web.Breakpoint})
	router, err := web.InitRouter(gin.New(), handler)
	handleErr("initializing web router", err)

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("Web front-end starting",
			slog.String("port", conf.HTTPServer.Port),
			slog.String("catalog_api", conf.CatalogAPI.URL))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metricsServer := metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down HTTP server", slog.Any("err", err))
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down metrics server", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
