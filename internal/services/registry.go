package services

import (
	"time"

	"github.com/safekids/app-safekids/internal/config"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/redisclient"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Stores are the persistence backends the services run on
type Stores struct {
	Criancas     repository.Store[models.Crianca]
	Responsaveis repository.Store[models.Responsavel]
	Tios         repository.Store[models.Tio]
	Cultos       repository.Store[models.Culto]
	Usuarios     repository.Store[models.Usuario]
	Photos       storage.PhotoStore
}

// MongoStores builds MongoDB-backed stores from the configured collections
func MongoStores(db *mongo.Database, cfg *config.Config) Stores {
	return Stores{
		Criancas:     repository.NewMongoStore[models.Crianca](db, cfg.CriancaCollection),
		Responsaveis: repository.NewMongoStore[models.Responsavel](db, cfg.ResponsavelCollection),
		Tios:         repository.NewMongoStore[models.Tio](db, cfg.TioCollection),
		Cultos:       repository.NewMongoStore[models.Culto](db, cfg.CultoCollection),
		Usuarios:     repository.NewMongoStore[models.Usuario](db, cfg.UsuarioCollection),
		Photos:       storage.NewGridFSStore(db, cfg.PhotoBucket, cfg.PhotoMaxBytes),
	}
}

// MemoryStores builds in-process stores with the same unique constraints
func MemoryStores(photoMaxBytes int64) Stores {
	return Stores{
		Criancas:     repository.NewMemoryStore[models.Crianca]("criancas"),
		Responsaveis: repository.NewMemoryStore[models.Responsavel]("responsaveis", "cpf"),
		Tios:         repository.NewMemoryStore[models.Tio]("tios", "cpf"),
		Cultos:       repository.NewMemoryStore[models.Culto]("cultos"),
		Usuarios:     repository.NewMemoryStore[models.Usuario]("usuarios", "email"),
		Photos:       storage.NewMemoryStore(photoMaxBytes),
	}
}

// InitServices initializes the global service instances. redis may be nil,
// which disables caching.
func InitServices(stores Stores, redis *redisclient.Client, cfg *config.Config) {
	logger := zap.L().Named("services")

	location := cfg.Location()
	now := func() time.Time { return time.Now().In(location) }

	entities := newCache(redis, cfg.RedisTTL)

	CriancaServiceInstance = NewCriancaService(stores.Criancas, stores.Responsaveis, stores.Tios, entities)
	ResponsavelServiceInstance = NewResponsavelService(stores.Responsaveis, stores.Criancas, entities)
	TioServiceInstance = NewTioService(stores.Tios, stores.Criancas, entities)
	AssociationServiceInstance = NewAssociationService(stores.Criancas, stores.Responsaveis, stores.Tios, entities, now)
	DashboardServiceInstance = NewDashboardService(stores.Criancas, stores.Responsaveis, stores.Tios, stores.Cultos,
		entities, cfg.DashboardCacheTTL, location, now)
	CultoServiceInstance = NewCultoService(stores.Cultos, DashboardServiceInstance, entities)
	AttendanceServiceInstance = NewAttendanceService(stores.Cultos, stores.Criancas, AssociationServiceInstance,
		DashboardServiceInstance, entities, now)
	AuthServiceInstance = NewAuthService(stores.Usuarios, AuthOptions{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		TTL:        cfg.JWTTTL,
		BcryptCost: cfg.BcryptCost,
	})
	PhotoServiceInstance = NewPhotoService(stores.Photos)

	logger.Info("services initialized", zap.Bool("cache_enabled", redis != nil))
}
