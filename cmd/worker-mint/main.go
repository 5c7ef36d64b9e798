package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/config"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/minting"
	"github.com/veriframe/vf-pipeline/internal/providers/ethereum"
	"github.com/veriframe/vf-pipeline/internal/providers/jetstream"
	"github.com/veriframe/vf-pipeline/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerMintConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Environment,
		Tags: map[string]string{
			"service": "worker-mint",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting mint worker")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	keystore, err := ethereum.NewKeystore(cfg.Keystore.MasterKeyHex, dataStore, adapter.NewBase64())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize keystore", zap.Error(err))
	}

	client, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Blockchain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial blockchain RPC", zap.Error(err))
	}
	defer client.Close()

	gateway, err := ethereum.NewGateway(ethereum.GatewayConfig{
		ChainID:         cfg.Blockchain.ChainID,
		ContractAddress: cfg.Blockchain.ContractAddress,
		Confirmations:   cfg.Blockchain.Confirmations,
		ConfirmTimeout:  cfg.Blockchain.ConfirmTimeout,
		GasLimit:        cfg.Blockchain.GasLimit,
	}, client, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize blockchain gateway", zap.Error(err))
	}

	natsCfg := jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}

	publisher, err := jetstream.NewPublisher(natsCfg, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	consumer, err := jetstream.NewConsumer(jetstream.ConsumerConfig{
		Config:     natsCfg,
		AckWait:    cfg.NATS.AckWait,
		MaxDeliver: cfg.NATS.MaxDeliver,
	}, adapter.NewNatsJetStream())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS consumer", zap.Error(err))
	}
	defer consumer.Close()

	coordinator := minting.NewCoordinator(dataStore, keystore, gateway, publisher, jsonAdapter, clock, cfg.Mint.MaxRetries)

	errChan := make(chan error, 1)
	go func() {
		if err := coordinator.Run(ctx, consumer, cfg.NATS.ConsumerName); err != nil {
			errChan <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	cancel()
	logger.Info("Mint worker stopped")
}
