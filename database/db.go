package database

import (
	"context"
	"time"

	"bettermann/config"
	"bettermann/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the MongoDB client instance, nil when the store is not
// configured or unreachable.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection and returns the database handle.
// A missing DATABASE_URL/DATABASE_NAME or a failed dial is not fatal: the
// service keeps running and data endpoints answer with store_unavailable.
func InitDB() *mongo.Database {
	logger := utils.GetLogger()

	if config.AppConfig.DatabaseURL == "" || config.AppConfig.DatabaseName == "" {
		logger.Warn("DATABASE_URL or DATABASE_NAME not set, store unavailable")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Sugar().Warnf("failed to connect to MongoDB: %v", err)
		return nil
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Sugar().Warnf("failed to ping MongoDB: %v", err)
		return nil
	}
	MongoClient = client
	logger.Info("Connected to MongoDB successfully!")
	return client.Database(config.AppConfig.DatabaseName)
}

// Disconnect closes the MongoDB connection if one was established.
func Disconnect() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to disconnect MongoDB: %v", err)
	}
}
