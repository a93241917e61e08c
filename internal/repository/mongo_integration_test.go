//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func startMongo(t *testing.T) *mongo.Client {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "Failed to start MongoDB container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get MongoDB connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "Failed to connect to MongoDB")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, client.Ping(ctx, nil), "Failed to ping MongoDB")
	return client
}

func TestMongoStore(t *testing.T) {
	client := startMongo(t)
	n := 0

	runStoreContract(t, func(t *testing.T) Store[models.Responsavel] {
		n++
		db := client.Database("safekids_test_" + string(rune('a'+n)))
		coll := db.Collection("responsaveis")
		_, err := coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
			Keys:    bson.D{{Key: "cpf", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		require.NoError(t, err)
		return NewMongoStore[models.Responsavel](db, "responsaveis")
	})
}
