// Package main runs the Ethereum block indexer that stores blocks as Parquet files.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/ethereum"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/service/indexer"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/service/poller"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/evm/storage/parquet"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/handoff"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type config struct {
	RPCURL          string        `long:"rpc-url" env:"ETH_INDEXER_RPC_URL" description:"Ethereum JSON-RPC URL" default:"https://rpc.sepolia.org"`
	Network         model.Network `long:"network" env:"ETH_INDEXER_NETWORK" description:"network name" default:"sepolia"`
	BlocksInMemory  int           `long:"blocks-in-memory" env:"ETH_INDEXER_BLOCKS_IN_MEMORY" description:"queue capacity and blocks per row group" default:"1000"`
	RotationBlocks  uint64        `long:"rotation-blocks" env:"ETH_INDEXER_ROTATION_BLOCKS" description:"blocks per output file, 0 disables rotation" default:"10000"`
	DataDir         string        `long:"data-dir" env:"ETH_INDEXER_DATA_DIR" description:"directory for parquet files" default:"/data/eth-indexer"`
	MetricsPort     uint16        `long:"metrics-port" env:"ETH_INDEXER_METRICS_PORT" description:"port for metrics server" default:"9090"`
	HealthAddr      string        `long:"health-addr" env:"ETH_INDEXER_HEALTH_ADDR" description:"address for health server" default:":8080"`
	StartBlock      startBlock    `long:"start-block" env:"ETH_INDEXER_START_BLOCK" description:"first block to index, defaults to the chain head"`
	RPCRPS          int           `long:"rpc-rps" env:"ETH_INDEXER_RPC_RPS" description:"RPC requests per second, 0 means unlimited" default:"0"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"ETH_INDEXER_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RetryDelay      time.Duration `long:"retry-delay" env:"ETH_INDEXER_RETRY_DELAY" description:"wait between failed RPC calls" default:"1s"`
	PollInterval    time.Duration `long:"poll-interval" env:"ETH_INDEXER_POLL_INTERVAL" description:"wait after catching up with the chain head" default:"1s"`
	FlushOnShutdown bool          `long:"flush-on-shutdown" env:"ETH_INDEXER_FLUSH_ON_SHUTDOWN" description:"write pending blocks before exiting"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if err := cfg.validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	logger = logger.With(zap.String("network", string(cfg.Network)))
	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("eth indexer failed", zap.Error(err))
	}
	logger.Info("eth indexer stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	startHTTPServer(ctx, "metrics", fmt.Sprintf(":%d", cfg.MetricsPort), metricsMux, logger)

	healthMux := http.NewServeMux()
	healthMux.Handle("/health", transport.NewHealthHandler())
	startHTTPServer(ctx, "health", cfg.HealthAddr, healthMux, logger)

	client, err := rpc.DialOptions(ctx, cfg.RPCURL, rpc.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
	if err != nil {
		return fmt.Errorf("dial rpc: %w", err)
	}
	defer client.Close()

	var limiter ratelimit.Limiter
	if cfg.RPCRPS > 0 {
		limiter = ratelimit.New(cfg.RPCRPS)
	}
	source := ethereum.NewSource(ethereum.NewRPCClient(client, limiter, metrics.NewRPCClient(cfg.Network)))

	queue, err := handoff.New[model.Block](cfg.BlocksInMemory)
	if err != nil {
		return fmt.Errorf("init block queue: %w", err)
	}
	indexerMetrics := metrics.NewIndexer(cfg.Network)

	blockPoller, err := poller.New(source, queue, indexerMetrics, logger.Named("poller"),
		poller.WithRetryDelay(cfg.RetryDelay),
		poller.WithPollInterval(cfg.PollInterval),
	)
	if err != nil {
		return fmt.Errorf("init poller: %w", err)
	}

	writer, err := parquet.NewWriter(parquet.Config{
		Dir:            cfg.DataDir,
		FlushThreshold: cfg.BlocksInMemory,
		RotationBlocks: cfg.RotationBlocks,
	}, metrics.NewStorageWriter(cfg.Network), logger.Named("storage"))
	if err != nil {
		return fmt.Errorf("init storage writer: %w", err)
	}

	opts := []indexer.Option{indexer.WithFlushOnShutdown(cfg.FlushOnShutdown)}
	if cfg.StartBlock.set {
		opts = append(opts, indexer.WithStartBlock(cfg.StartBlock.value))
	}
	svc, err := indexer.New(blockPoller, queue, writer, indexerMetrics, logger.Named("indexer"), opts...)
	if err != nil {
		return err
	}

	logger.Info("starting eth indexer",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("blocks_in_memory", cfg.BlocksInMemory),
		zap.Uint64("rotation_blocks", cfg.RotationBlocks),
	)
	return svc.Run(ctx)
}

func startHTTPServer(ctx context.Context, name, addr string, handler http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting "+name+" server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(name+" server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown "+name+" server", zap.Error(err))
		}
	}()
}
