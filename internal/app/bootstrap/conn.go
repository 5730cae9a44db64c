// internal/app/bootstrap/conn.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	bucketstore "github.com/igor-siergiej/jewellery-catalogue/internal/app/store/bucket"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the backend connections: the MongoDB client plus
// the bucket client for design images. WAFFLE calls this after config has
// been loaded and validated, with a context bounded by its connect timeout.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	clientOpts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	bucketClient, err := minio.New(appCfg.BucketEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(appCfg.BucketAccessKey, appCfg.BucketSecretKey, ""),
		Secure: appCfg.BucketUseSSL,
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("bucket client: %w", err)
	}
	logger.Info("bucket client ready",
		zap.String("endpoint", appCfg.BucketEndpoint),
		zap.String("bucket", appCfg.BucketName))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		Bucket:        bucketstore.New(bucketClient, appCfg.BucketName),
	}, nil
}
