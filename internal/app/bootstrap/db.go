// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/store/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureSchema sets up the indexes the stores rely on. Designs and
// materials are addressed by their natural "id" field, so each of those
// collections gets a unique index on it.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	for _, collection := range []string{repository.DesignsCollection, repository.MaterialsCollection} {
		_, err := deps.MongoDatabase.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			logger.Error("index creation failed",
				zap.String("collection", collection), zap.Error(err))
			return err
		}
	}
	return nil
}
