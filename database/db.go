package database

import (
	"context"
	"time"

	"snapfix/config"
	"snapfix/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoClient is the process-wide MongoDB client, set once at startup.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping. The
// process cannot serve without a store, so failure here is fatal.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("MongoDB did not answer ping", zap.Error(err))
	}
	MongoClient = client
	logger.Info("Connected to MongoDB")
}
