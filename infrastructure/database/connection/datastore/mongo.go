package datastore

import (
	"context"
	"os"
	"time"

	"certverify.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client *mongo.Client

	UserModel            *mongo.Collection
	CertificateModel     *mongo.Collection
	LedgerModel          *mongo.Collection
	VerificationLogModel *mongo.Collection
)

func ConnectToDatabase() {
	url := os.Getenv("DB_URL")

	if url == "" {
		logger.Error("mongo url missing")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(url)
	clientOpts.SetMinPoolSize(5)
	clientOpts.SetMaxPoolSize(10)

	c, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Warning("an error occured while starting the database", logger.LoggerOptions{Key: "error", Data: err})
		return
	}
	client = c

	db := client.Database(os.Getenv("DB_NAME"))
	setUpIndexes(ctx, db)

	logger.Info("connected to mongodb successfully")
}

// Set up the indexes for the database
func setUpIndexes(ctx context.Context, db *mongo.Database) {
	UserModel = db.Collection("Users")
	UserModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}, {
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: options.Index(),
	}})

	CertificateModel = db.Collection("Certificates")
	CertificateModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "certificateNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	}, {
		Keys:    bson.D{{Key: "documentHash", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "studentID", Value: 1}},
		Options: options.Index(),
	}})

	LedgerModel = db.Collection("Ledger")
	LedgerModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "txHash", Value: 1}},
		Options: options.Index().SetUnique(true),
	}, {
		Keys:    bson.D{{Key: "blockNumber", Value: -1}},
		Options: options.Index(),
	}})

	VerificationLogModel = db.Collection("VerificationLogs")
	VerificationLogModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "verifierID", Value: 1}, {Key: "verifiedAt", Value: -1}},
		Options: options.Index(),
	}})

	logger.Info("mongodb indexes set up successfully")
}

// CleanUp disconnects the mongo client.
func CleanUp() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("error disconnecting from mongodb", logger.LoggerOptions{Key: "error", Data: err})
	}
}
