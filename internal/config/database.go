package config

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB database handle
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// IndexSpec describes one index the service relies on.
type IndexSpec struct {
	Collection string
	Name       string
	Keys       bson.D
	Unique     bool
}

// RequiredIndexes lists every index ensured at startup.
func RequiredIndexes() []IndexSpec {
	return []IndexSpec{
		{Collection: AppConfig.CriancaCollection, Name: "createdAt_-1", Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Collection: AppConfig.CriancaCollection, Name: "responsavelId_1", Keys: bson.D{{Key: "responsavelId", Value: 1}}},
		{Collection: AppConfig.ResponsavelCollection, Name: "createdAt_-1", Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Collection: AppConfig.ResponsavelCollection, Name: "cpf_1", Keys: bson.D{{Key: "cpf", Value: 1}}, Unique: true},
		{Collection: AppConfig.ResponsavelCollection, Name: "criancasIds_1", Keys: bson.D{{Key: "criancasIds", Value: 1}}},
		{Collection: AppConfig.TioCollection, Name: "createdAt_-1", Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Collection: AppConfig.TioCollection, Name: "cpf_1", Keys: bson.D{{Key: "cpf", Value: 1}}, Unique: true},
		{Collection: AppConfig.TioCollection, Name: "criancasAutorizadasIds_1", Keys: bson.D{{Key: "criancasAutorizadasIds", Value: 1}}},
		{Collection: AppConfig.CultoCollection, Name: "createdAt_-1", Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Collection: AppConfig.CultoCollection, Name: "data_1", Keys: bson.D{{Key: "data", Value: 1}}},
		{Collection: AppConfig.UsuarioCollection, Name: "email_1", Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
	}
}

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logging.Logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logging.Logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := EnsureIndexes(context.Background()); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}
	startIndexMaintenance()

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
}

// InitRedis initializes the Redis connection. A failed ping is logged and the
// client kept: every cache read falls through to MongoDB.
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// maskMongoURI masks credentials in a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	scheme := "mongodb://"
	if strings.HasPrefix(uri, "mongodb+srv://") {
		scheme = "mongodb+srv://"
	}
	return scheme + "****:****@" + uri[at+1:]
}

// EnsureIndexes creates required indexes if they don't exist
func EnsureIndexes(ctx context.Context) error {
	logger := logging.Logger.Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, spec := range RequiredIndexes() {
		if err := ensureIndex(ctx, logger, spec); err != nil {
			return err
		}
	}

	logger.Info("all required indexes verified")
	return nil
}

func ensureIndex(ctx context.Context, logger *logging.SafeLogger, spec IndexSpec) error {
	collection := MongoDB.Collection(spec.Collection)

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.String("collection", spec.Collection), zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok && name == spec.Name {
			logger.Debug("index already exists",
				zap.String("collection", spec.Collection),
				zap.String("index", spec.Name))
			return nil
		}
	}

	opts := options.Index().SetName(spec.Name)
	if spec.Unique {
		opts.SetUnique(true)
	}

	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys, Options: opts})
	if err != nil {
		// another instance may have created it concurrently
		if mongo.IsDuplicateKeyError(err) {
			logger.Info("index already exists (created by another instance)",
				zap.String("collection", spec.Collection),
				zap.String("index", spec.Name))
			return nil
		}
		logger.Error("failed to create index",
			zap.String("collection", spec.Collection),
			zap.String("index", spec.Name),
			zap.Error(err))
		return err
	}

	logger.Info("created index",
		zap.String("collection", spec.Collection),
		zap.String("index", spec.Name))
	return nil
}

// startIndexMaintenance periodically re-runs EnsureIndexes
func startIndexMaintenance() {
	if AppConfig.IndexMaintenanceInterval <= 0 {
		return
	}
	logger := logging.Logger.Named("database")

	go func() {
		ticker := time.NewTicker(AppConfig.IndexMaintenanceInterval)
		defer ticker.Stop()

		for range ticker.C {
			if err := EnsureIndexes(context.Background()); err != nil {
				logger.Error("periodic index check failed", zap.Error(err))
			}
		}
	}()

	logger.Info("started index maintenance routine",
		zap.Duration("interval", AppConfig.IndexMaintenanceInterval))
}
