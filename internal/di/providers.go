package di

import (
	"context"
	"fmt"
	"time"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/handler/api"
	internalrepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/repository"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/bayut"
	icache "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/cache"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/coingecko"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/service/defillama"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/usecase"
	pkgcache "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/cache"
	pkgch "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/clickhouse"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/config"
	pkgkafka "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/kafka"
	applogger "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/logger"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/metrics"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient connects to ClickHouse when it is the configured
// listings source; otherwise returns nil and the Bayut client is used.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Listings.Source != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.SchemaStatements(cfg.ClickHouse.Table)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideListings selects the listings source from configuration.
func ProvideListings(cfg *config.Config, chClient *pkgch.Client, l *applogger.Logger) repository.ListingsProvider {
	if cfg.Listings.Source == "clickhouse" && chClient != nil {
		store := internalrepo.NewCHListingStore(chClient, cfg.ClickHouse.Table)
		store.SetLogger(l)
		return store
	}
	return bayut.New(cfg)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when the events
// sink is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Events.Enabled {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Events.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Events.WriteTimeout, cfg.Events.ReadTimeout),
		pkgkafka.WithAsync(cfg.Events.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher wraps the producer as a ResultPublisher, discarding
// events when the sink is off.
func ProvidePublisher(cfg *config.Config, producer *pkgkafka.Producer) repository.ResultPublisher {
	if producer == nil {
		return internalrepo.NopPublisher{}
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Events.Topic)
}

// ProvideDataCache builds the provider-data cache per the configured mode.
func ProvideDataCache(cfg *config.Config) (pkgcache.Service, error) {
	switch cfg.Cache.Mode {
	case "redis":
		return pkgcache.NewRedisCache(
			pkgcache.WithRedisAddr(cfg.Cache.Redis.Addr),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		)
	case "layered":
		redisCache, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisAddr(cfg.Cache.Redis.Addr),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, err
		}
		return pkgcache.NewLayeredCache(redisCache), nil
	default:
		return pkgcache.NewMemoryCache(), nil
	}
}

// ProvideResponseCache builds the rendered-response cache used by handlers.
func ProvideResponseCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Mode != "memory" && cfg.Cache.Redis.Addr != "" {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideCryptoAnalyzer creates the crypto valuation use case.
func ProvideCryptoAnalyzer(
	cfg *config.Config,
	pub repository.ResultPublisher,
	m repository.Metrics,
	dataCache pkgcache.Service,
	l *applogger.Logger,
) *usecase.CryptoAnalyzer {
	market := coingecko.New(cfg)
	tvl := defillama.New(cfg)
	return usecase.NewCryptoAnalyzer(market, tvl, pub, m, dataCache, cfg.Cache.QuoteTTL, l)
}

// ProvidePropertyAnalyzer creates the property valuation use case.
func ProvidePropertyAnalyzer(
	cfg *config.Config,
	listings repository.ListingsProvider,
	pub repository.ResultPublisher,
	m repository.Metrics,
	dataCache pkgcache.Service,
	l *applogger.Logger,
) *usecase.PropertyAnalyzer {
	return usecase.NewPropertyAnalyzer(listings, pub, m, dataCache, cfg.Cache.ListingsTTL, l)
}

// ProvideValuationsHandler creates the Echo handler with its response cache.
func ProvideValuationsHandler(
	cfg *config.Config,
	crypto *usecase.CryptoAnalyzer,
	property *usecase.PropertyAnalyzer,
	respCache icache.BytesCache,
	l *applogger.Logger,
) *api.ValuationsHandler {
	h := api.NewValuationsHandler(l, crypto, property)
	h.SetResponseCache(respCache)
	h.SetResultTTL(cfg.Cache.ResultTTL)
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler *api.ValuationsHandler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
	dataCache pkgcache.Service,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, handler, chClient, producer, dataCache, l)
}
