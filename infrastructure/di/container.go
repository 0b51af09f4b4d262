package di

import (
	"go.uber.org/zap"

	"sikdan-backend/application/ports"
	"sikdan-backend/application/services"
	domainconfig "sikdan-backend/domain/config"
	"sikdan-backend/domain/core/validators"
	"sikdan-backend/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	DomainConfig *domainconfig.DomainConfig
	Cache        ports.LocalCache
	Remote       ports.RemoteMealStore
	Store        *services.RecordStore
	Validator    *validators.MealValidator
}
