// Server entry point: resolves configuration, storage backend and ledger
// network once at startup and serves the wallet-management API.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/api"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/client"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/config"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/handler"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/logger"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/model"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/storage"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/xrpl"
)

// @title        XRPL Stablecoin Wallet API
// @version      1.0
// @description  HTTP API for managing XRPL stablecoin pilot wallets, issuer configuration and NFT event log
// @BasePath     /
func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	cfg := config.Get()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	network, err := client.NetworkByID(model.Network(cfg.Network))
	if err != nil {
		zlog.Fatal("invalid network", zap.Error(err))
	}

	store, err := newStore(cfg)
	if err != nil {
		zlog.Fatal("failed to set up storage", zap.Error(err))
	}

	ledger := client.NewXRPLClient(network)
	if err := ledger.Connect(); err != nil {
		zlog.Fatal("failed to connect to XRPL", zap.Error(err))
	}
	defer ledger.Close()

	var faucet xrpl.Funder
	if network.HasFaucet() {
		faucet = client.NewFaucetClient(network.FaucetURL)
	}

	svc := xrpl.NewService(store, ledger, faucet, network, cfg.SourceTag, zlog)
	router := api.SetupRouter(handler.NewHandler(svc, zlog), zlog)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting server",
			zap.String("port", cfg.Port),
			zap.String("network", cfg.Network),
			zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Error("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
}

// newStore builds the storage backend selected in configuration
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendBlob:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return storage.NewBlobStore(ctx, storage.BlobConfig{
			Endpoint:  cfg.BlobEndpoint,
			AccessKey: cfg.BlobAccessKey,
			SecretKey: cfg.BlobSecretKey,
			Bucket:    cfg.BlobBucket,
			Prefix:    cfg.BlobPrefix,
			UseSSL:    cfg.BlobUseSSL,
		})
	default:
		return storage.NewLocalStore(cfg.StorageDir)
	}
}
