package di

import (
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"sikdan-backend/application/ports"
	"sikdan-backend/application/services"
	domainconfig "sikdan-backend/domain/config"
	"sikdan-backend/domain/core/validators"
	"sikdan-backend/infrastructure/config"
	"sikdan-backend/infrastructure/persistence/localcache"
	supabasestore "sikdan-backend/infrastructure/persistence/supabase"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideDomainConfig creates the domain rule set
func ProvideDomainConfig() *domainconfig.DomainConfig {
	return domainconfig.DefaultDomainConfig()
}

// ProvideLocalCache creates the durable local cache
func ProvideLocalCache(cfg *config.Config, logger *zap.Logger) ports.LocalCache {
	return localcache.NewFileCache(cfg.DataDir, cfg.CacheKey, logger)
}

// ProvideRemoteStore creates the Supabase-backed remote store, or nil
// when the remote backend is disabled so the service runs local-only
func ProvideRemoteStore(cfg *config.Config, logger *zap.Logger) (ports.RemoteMealStore, error) {
	if !cfg.RemoteEnabled {
		logger.Info("remote backend disabled, running local-only")
		return nil, nil
	}

	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, err
	}

	return supabasestore.NewMealRepository(client, cfg.RemoteTimeout, logger), nil
}

// ProvideMealValidator creates the draft validator
func ProvideMealValidator(dcfg *domainconfig.DomainConfig) *validators.MealValidator {
	return validators.NewMealValidator(dcfg)
}

// ProvideRecordStore creates the record store over both backends
func ProvideRecordStore(
	cache ports.LocalCache,
	remote ports.RemoteMealStore,
	cfg *config.Config,
	dcfg *domainconfig.DomainConfig,
	logger *zap.Logger,
) *services.RecordStore {
	return services.NewRecordStore(cache, remote, cfg.UserID, dcfg, logger)
}
